package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"browsd/internal/config"
	"browsd/internal/log"
	"browsd/internal/tui/common"
	"browsd/internal/tui/components"
	"browsd/internal/tui/messages"
	"browsd/internal/tui/nav"
	"browsd/internal/tui/styles"
	"browsd/internal/tui/views"
	"browsd/internal/watch"
)

// tickMsg drives the periodic listing refresh.
type tickMsg time.Time

// watchMsg reports that the watched directory changed on disk.
type watchMsg struct {
	dir string
}

// Model is the top level program state: the browsing state machine plus
// the chrome around it.
type Model struct {
	cfg    *config.Config
	styles styles.Set

	nav     nav.Model
	preview *components.FileView
	status  *components.StatusBar

	// Optional; nil when watching is disabled or unavailable
	watcher *watch.Watcher

	keys     common.KeyMap
	focus    common.Focus
	showHelp bool
	width    int
	height   int
}

// New builds the program model. When the file watcher cannot be created
// the browser falls back to timer driven refreshes alone.
func New(cfg *config.Config) (*Model, error) {
	start, err := cfg.StartDir()
	if err != nil {
		return nil, err
	}

	st := styles.New(cfg)
	m := &Model{
		cfg:     cfg,
		styles:  st,
		keys:    common.DefaultKeyMap(),
		nav:     nav.New(cfg, start),
		preview: components.NewFileView(cfg, st),
		status:  components.NewStatusBar(st),
	}

	if cfg.Refresh.Enabled && cfg.Refresh.Watch {
		watcher, err := watch.New()
		if err != nil {
			log.LogError(err, "File watching unavailable")
		} else if err := watcher.Start(); err != nil {
			log.LogError(err, "File watching unavailable")
		} else {
			m.watcher = watcher
		}
	}

	return m, nil
}

// Close releases the model's background resources.
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("browsd"),
		m.nav.Init(),
		m.status.SetLoading(true),
	}
	if m.cfg.Refresh.Enabled {
		cmds = append(cmds, m.tickCmd())
	}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForWatch())
	}
	return tea.Batch(cmds...)
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.RefreshInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForWatch blocks on the watcher until something in the displayed
// directory changes on disk.
func (m *Model) waitForWatch() tea.Cmd {
	ch := m.watcher.Changes()
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return watchMsg{dir: change.Dir}
	}
}

func refresh() tea.Msg {
	return messages.RefreshMsg{}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), refresh)

	case watchMsg:
		log.Debugf("Change detected in %s", msg.dir)
		if m.watcher == nil {
			return m, refresh
		}
		return m, tea.Batch(m.waitForWatch(), refresh)

	case spinner.TickMsg:
		return m, m.status.Update(msg)
	}

	return m.updateNav(msg)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, refresh
	case key.Matches(msg, m.keys.NextPane):
		if !m.preview.Empty() {
			if m.focus == common.FocusBrowser {
				m.focus = common.FocusPreview
			} else {
				m.focus = common.FocusBrowser
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.ClosePane):
		m.preview.Clear()
		m.focus = common.FocusBrowser
		m.layout()
		return m, nil
	}

	if m.focus == common.FocusPreview {
		return m, m.preview.Update(msg)
	}
	return m.updateNav(msg)
}

// updateNav routes a message into the state machine and reflects the
// outcome in the surrounding chrome.
func (m *Model) updateNav(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	newNav, cmd, event := m.nav.Update(msg)
	m.nav = newNav
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if event != nil {
		m.preview.Show(event.Path, event.Text)
		m.layout()
	}

	switch msg.(type) {
	case messages.ChangeDirMsg:
		if cmd != nil {
			if tick := m.status.SetLoading(true); tick != nil {
				cmds = append(cmds, tick)
			}
		}
	case messages.DirListedMsg:
		m.status.SetLoading(false)
		m.status.SetText(m.summary())
		m.retargetWatcher()
	}

	return m, tea.Batch(cmds...)
}

// summary describes the displayed listing for the status bar.
func (m *Model) summary() string {
	if m.nav.Loading() {
		return ""
	}
	dirs, regular := 0, 0
	for _, e := range m.nav.Entries() {
		if e.IsDir {
			dirs++
		} else {
			regular++
		}
	}
	return fmt.Sprintf("%d dirs, %d files", dirs, regular)
}

// retargetWatcher keeps the watcher pointed at the displayed directory.
func (m *Model) retargetWatcher() {
	if m.watcher == nil || m.nav.Dir() == "" {
		return
	}
	if m.watcher.Dir() == m.nav.Dir() {
		return
	}
	if err := m.watcher.Watch(m.nav.Dir()); err != nil {
		log.LogError(err, "Cannot watch directory")
	}
}

// layout divides the window between the browser and the preview pane.
func (m *Model) layout() {
	if m.width <= 0 {
		return
	}
	height := max(m.height-8, 1)
	if m.preview.Empty() {
		m.nav = m.nav.SetSize(m.width-4, height)
		return
	}
	half := max((m.width-8)/2, 10)
	m.nav = m.nav.SetSize(half, height)
	m.preview.SetSize(half, max(height-3, 1))
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Nav exposes the browsing state machine.
func (m *Model) Nav() nav.Model {
	return m.nav
}

func (m *Model) CurrentDir() string {
	return m.nav.Dir()
}

func (m *Model) Focus() common.Focus {
	return m.focus
}

func (m *Model) ShowHelp() bool {
	return m.showHelp
}

func (m *Model) BrowserView() string {
	return m.nav.View()
}

func (m *Model) PreviewView() string {
	return m.preview.View()
}

func (m *Model) StatusView() string {
	return m.status.View()
}

func (m *Model) Width() int {
	return m.width
}

func (m *Model) Height() int {
	return m.height
}
