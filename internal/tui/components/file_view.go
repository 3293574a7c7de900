package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"browsd/internal/config"
	"browsd/internal/tui/styles"
)

// FileView shows the contents of the most recently read file. Each read
// replaces the previous contents wholesale.
type FileView struct {
	viewport  viewport.Model
	styles    styles.Set
	path      string
	text      string
	highlight bool
	theme     string
}

func NewFileView(cfg *config.Config, st styles.Set) *FileView {
	v := &FileView{
		viewport: viewport.New(0, 0),
		styles:   st,
	}
	if cfg != nil {
		v.highlight = cfg.Preview.Highlight
		v.theme = cfg.Preview.Theme
	}
	return v
}

// Show replaces the view with a freshly read file, scrolled back to the
// top.
func (v *FileView) Show(path, text string) {
	v.path = path
	v.text = text

	rendered := text
	if v.highlight {
		rendered = highlightText(path, text, v.theme)
	}
	v.viewport.SetContent(rendered)
	v.viewport.GotoTop()
}

// Clear empties the view.
func (v *FileView) Clear() {
	v.path = ""
	v.text = ""
	v.viewport.SetContent("")
}

func (v *FileView) Empty() bool {
	return v.path == ""
}

// Path returns the path of the file on display.
func (v *FileView) Path() string {
	return v.path
}

// Text returns the undecorated contents on display.
func (v *FileView) Text() string {
	return v.text
}

func (v *FileView) SetSize(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = height
}

// Update lets the viewport handle scrolling keys.
func (v *FileView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

func (v *FileView) View() string {
	if v.Empty() {
		return ""
	}
	title := v.styles.Title.Render(v.path)
	return title + "\n" + v.styles.Border.Render(v.viewport.View())
}
