// Package nav implements the directory browsing state machine. The model
// starts out loading its initial directory and thereafter always shows the
// most recently listed one; file reads are surfaced to the host as events
// and never change what is on display.
package nav

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"browsd/internal/config"
	"browsd/internal/files"
	"browsd/internal/log"
	"browsd/internal/tui/common"
	"browsd/internal/tui/messages"
	"browsd/internal/tui/styles"
)

type phase int

const (
	loading phase = iota
	loaded
)

// Event reports a completed file read for the host to handle.
type Event struct {
	Path string
	Text string
}

// Model is the browser state machine. It is a value: Update returns the
// next state along with any scheduled work and at most one event.
type Model struct {
	lister *files.Lister
	loader *files.Loader
	styles styles.Set
	keys   common.KeyMap

	phase   phase
	target  string // directory the initial listing was scheduled for
	dir     string // directory on display once loaded
	entries []files.Entry
	rows    []string // rendered labels, one per entry
	cursor  int

	width  int
	height int
}

// New builds the state machine pointed at startDir. The first listing is
// scheduled by Init.
func New(cfg *config.Config, startDir string) Model {
	return Model{
		lister: files.NewLister(cfg),
		loader: files.NewLoader(cfg),
		styles: styles.New(cfg),
		keys:   common.DefaultKeyMap(),
		phase:  loading,
		target: startDir,
	}
}

// Init schedules the initial directory listing.
func (m Model) Init() tea.Cmd {
	return m.listCmd(m.target)
}

// Update advances the state machine. The returned event is non-nil only
// when a file read completed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd, *Event) {
	switch msg := msg.(type) {
	case messages.ChangeDirMsg:
		// The move is only scheduled; nothing changes until the listing
		// arrives
		if !files.IsDir(msg.Path) {
			log.Debugf("Ignoring change to non-directory %s", msg.Path)
			return m, nil, nil
		}
		return m, m.listCmd(msg.Path), nil

	case messages.ReadFileMsg:
		if !files.IsFile(msg.Path) {
			log.Debugf("Ignoring read of non-file %s", msg.Path)
			return m, nil, nil
		}
		return m, m.loadCmd(msg.Path), nil

	case messages.RefreshMsg:
		if m.phase != loaded {
			return m, nil, nil
		}
		return m, m.listCmd(m.dir), nil

	case messages.DirListedMsg:
		if msg.Listing == nil {
			return m, nil, nil
		}
		return m.showListing(msg.Listing), nil, nil

	case messages.FileLoadedMsg:
		if msg.Content == nil {
			return m, nil, nil
		}
		return m, nil, &Event{Path: msg.Content.Path, Text: msg.Content.Text}

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}
	return m, nil, nil
}

// showListing replaces the displayed directory with a fresh listing. The
// latest result always wins, whatever state it arrives in.
func (m Model) showListing(listing *files.Listing) Model {
	sameDir := m.phase == loaded && m.dir == listing.Dir

	m.phase = loaded
	m.dir = listing.Dir
	m.entries = listing.Entries
	m.rows = make([]string, len(m.entries))
	for i, e := range m.entries {
		m.rows[i] = e.Label()
	}

	if !sameDir {
		m.cursor = 0
	} else if m.cursor >= len(m.entries) {
		m.cursor = max(0, len(m.entries)-1)
	}
	return m
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd, *Event) {
	if m.phase != loaded {
		return m, nil, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.GotoTop):
		m.cursor = 0
	case key.Matches(msg, m.keys.GotoBottom):
		m.cursor = max(0, len(m.entries)-1)
	case key.Matches(msg, m.keys.GoBack):
		if parent, ok := m.parent(); ok {
			return m, changeDir(parent), nil
		}
	case key.Matches(msg, m.keys.Open):
		if entry, ok := m.Selected(); ok {
			if entry.IsDir {
				return m, changeDir(entry.Path), nil
			}
			return m, readFile(entry.Path), nil
		}
	}
	return m, nil, nil
}

// changeDir re-enters the state machine with a directory change request.
func changeDir(path string) tea.Cmd {
	return func() tea.Msg {
		return messages.ChangeDirMsg{Path: path}
	}
}

// readFile re-enters the state machine with a file read request.
func readFile(path string) tea.Cmd {
	return func() tea.Msg {
		return messages.ReadFileMsg{Path: path}
	}
}

func (m Model) listCmd(path string) tea.Cmd {
	lister := m.lister
	return func() tea.Msg {
		listing, err := lister.List(path)
		if err != nil {
			log.LogError(err, "Directory listing failed")
			return messages.DirListedMsg{}
		}
		return messages.DirListedMsg{Listing: listing}
	}
}

func (m Model) loadCmd(path string) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		content, err := loader.Load(path)
		if err != nil {
			log.LogError(err, "File load failed")
			return messages.FileLoadedMsg{}
		}
		return messages.FileLoadedMsg{Content: content}
	}
}

func (m Model) parent() (string, bool) {
	if m.phase != loaded {
		return "", false
	}
	parent := filepath.Dir(m.dir)
	if parent == m.dir {
		return "", false
	}
	return parent, true
}

// SetSize sets the space available to the entry list.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the entry list. While the initial listing is pending it
// shows a placeholder instead.
func (m Model) View() string {
	if m.phase == loading {
		return m.styles.Help.Render("Loading " + m.target + " ...")
	}

	var b strings.Builder
	if _, ok := m.parent(); ok {
		b.WriteString(m.styles.Directory.Render("  .."))
		b.WriteString("\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(m.styles.Help.Render("  no entries"))
		return b.String()
	}

	start, end := m.window()
	for i := start; i < end; i++ {
		switch {
		case i == m.cursor:
			b.WriteString(m.styles.Selected.Render("> " + m.rows[i]))
		case m.entries[i].IsDir:
			b.WriteString(m.styles.Directory.Render("  " + m.rows[i]))
		default:
			b.WriteString(m.styles.File.Render("  " + m.rows[i]))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// window returns the slice of rows that fits the available height, kept
// centered on the cursor.
func (m Model) window() (int, int) {
	if m.height <= 0 || len(m.rows) <= m.height {
		return 0, len(m.rows)
	}
	start := m.cursor - m.height/2
	if start < 0 {
		start = 0
	}
	if start > len(m.rows)-m.height {
		start = len(m.rows) - m.height
	}
	return start, start + m.height
}

// Loading reports whether the initial listing is still pending.
func (m Model) Loading() bool {
	return m.phase == loading
}

// Dir returns the directory on display, empty until the first listing
// arrives.
func (m Model) Dir() string {
	if m.phase != loaded {
		return ""
	}
	return m.dir
}

// Target returns the directory the initial listing was scheduled for.
func (m Model) Target() string {
	return m.target
}

// Entries returns the entries on display.
func (m Model) Entries() []files.Entry {
	return m.entries
}

// Rows returns the rendered label for each entry, in display order.
func (m Model) Rows() []string {
	return m.rows
}

// Cursor returns the index of the highlighted entry.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the highlighted entry, if there is one.
func (m Model) Selected() (files.Entry, bool) {
	if m.phase != loaded || len(m.entries) == 0 || m.cursor >= len(m.entries) {
		return files.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// HasParent reports whether up navigation is possible from the displayed
// directory.
func (m Model) HasParent() bool {
	_, ok := m.parent()
	return ok
}
