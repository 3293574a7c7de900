package styles

import (
	"github.com/charmbracelet/lipgloss"

	"browsd/internal/config"
)

// Set holds the resolved lipgloss styles the browser renders with.
type Set struct {
	App       lipgloss.Style
	Title     lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Selected  lipgloss.Style
	Border    lipgloss.Style
	Help      lipgloss.Style
}

// New resolves the configured theme into a style set. Colors set directly
// in the configuration override the named theme per key.
func New(cfg *config.Config) Set {
	name := "default"
	if cfg != nil && cfg.Theme.Name != "" {
		name = cfg.Theme.Name
	}
	colors := config.GetTheme(name)
	if cfg != nil {
		override(colors, "directory", cfg.Theme.Directory)
		override(colors, "file", cfg.Theme.File)
		override(colors, "selected", cfg.Theme.Selected)
		override(colors, "title", cfg.Theme.Title)
		override(colors, "border", cfg.Theme.Border)
		override(colors, "help", cfg.Theme.Help)
	}

	return Set{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors["title"])).
			MarginBottom(1),
		Directory: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors["directory"])),
		File: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors["file"])),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors["selected"])),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors["border"])).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors["help"])),
	}
}

func override(colors map[string]string, key, value string) {
	if value != "" {
		colors[key] = value
	}
}
