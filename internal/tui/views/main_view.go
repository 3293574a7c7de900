package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"browsd/internal/tui/common"
	"browsd/internal/tui/styles"
)

// RenderMainView lays out the whole screen: title, browser pane with the
// preview beside it when a file is open, status line, and key help.
func RenderMainView(m common.ModelReader) string {
	var sb strings.Builder

	sb.WriteString(renderTitle(m))
	sb.WriteString("\n")

	body := m.BrowserView()
	if preview := m.PreviewView(); preview != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", preview)
	}
	sb.WriteString(body)

	if status := m.StatusView(); status != "" {
		sb.WriteString("\n" + status)
	}

	if m.ShowHelp() {
		sb.WriteString("\n" + RenderHelp())
	}
	sb.WriteString("\n" + RenderKeyCommands())

	return styles.Theme.App.Render(sb.String())
}

func renderTitle(m common.ModelReader) string {
	dir := m.CurrentDir()
	if dir == "" {
		dir = "browsd"
	}
	return styles.Theme.Title.Render(dir)
}

func RenderKeyCommands() string {
	return styles.Theme.Help.Render(`
[↑/k] Up  [↓/j] Down  [←/h] Parent  [→/l/Enter] Open  [r] Refresh  [Tab] Pane  [?] Help  [q] Quit
`)
}

func RenderHelp() string {
	return styles.Theme.Help.Render(`
Move with j/k or the arrow keys. Open the highlighted entry with l, the
right arrow, or Enter; a directory replaces the listing and a file opens
in the preview pane. Go to the parent directory with h, the left arrow,
or Backspace. The listing refreshes on its own; press r to refresh now.
Tab moves focus to the preview for scrolling, Esc closes it.
`)
}
