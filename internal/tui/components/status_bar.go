package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"browsd/internal/tui/styles"
)

// StatusBar is the single line of state under the browser. While background
// work is pending it shows a spinner next to the text.
type StatusBar struct {
	text    string
	style   lipgloss.Style
	spinner spinner.Model
	loading bool
}

func NewStatusBar(st styles.Set) *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.Help

	return &StatusBar{
		style:   st.Help,
		spinner: s,
	}
}

// SetLoading toggles the spinner. Turning it on returns the command that
// starts the spinner ticking.
func (s *StatusBar) SetLoading(loading bool) tea.Cmd {
	wasLoading := s.loading
	s.loading = loading
	if loading && !wasLoading {
		return s.spinner.Tick
	}
	return nil
}

// Loading reports whether the spinner is showing.
func (s *StatusBar) Loading() bool {
	return s.loading
}

func (s *StatusBar) SetText(text string) {
	s.text = text
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if s.loading {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (s *StatusBar) View() string {
	if s.text == "" && !s.loading {
		return ""
	}

	if s.loading {
		return s.style.Render(s.spinner.View() + " " + s.text)
	}
	return s.style.Render(s.text)
}
