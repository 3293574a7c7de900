package tui_test

import (
	"os"
	"path/filepath"
	"testing"

	alsrt "github.com/alecthomas/assert"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"browsd/internal/config"
	"browsd/internal/tui"
	"browsd/pkg/testutils"
)

// runCmds feeds every message a command tree produces back into the model,
// so listings and loads settle the way they would under the program
// runtime. Spinner ticks are dropped because they re-arm forever.
func runCmds(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < 64; steps++ {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil:
		case spinner.TickMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			var followup tea.Cmd
			m, followup = m.Update(msg)
			queue = append(queue, followup)
		}
	}
	return m
}

func press(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	var msg tea.KeyMsg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	next, cmd := m.Update(msg)
	return runCmds(t, next, cmd)
}

func TestBrowserIntegration(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir1"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir2"), 0o755))
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"test1.txt": "first file",
		"test2.txt": "second file",
	})
	testutils.CreateTestFilesWithContent(t, filepath.Join(tmpDir, "dir1"), map[string]string{
		"inner.txt": "inner content",
	})

	cfg := config.NewTestConfig()
	cfg.Browse.StartDir = tmpDir

	model, err := tui.New(cfg)
	require.NoError(t, err)
	t.Cleanup(model.Close)

	var m tea.Model = model
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = runCmds(t, m, m.Init())

	t.Run("initial listing", func(t *testing.T) {
		view := testutils.StripANSI(m.View())
		alsrt.Contains(t, view, tmpDir, "Title should show the start directory")
		alsrt.Contains(t, view, "D - dir1")
		alsrt.Contains(t, view, "D - dir2")
		alsrt.Contains(t, view, "F - test1.txt")
		alsrt.Contains(t, view, "2 dirs, 2 files")
	})

	t.Run("descend and come back", func(t *testing.T) {
		m = press(t, m, "j") // dir2
		m = press(t, m, "k") // back on dir1
		m = press(t, m, "l")

		alsrt.Equal(t, filepath.Join(tmpDir, "dir1"), m.(*tui.Model).CurrentDir())
		view := testutils.StripANSI(m.View())
		alsrt.Contains(t, view, "F - inner.txt")

		m = press(t, m, "h")
		alsrt.Equal(t, tmpDir, m.(*tui.Model).CurrentDir(), "Should be back in the start directory")
		view = testutils.StripANSI(m.View())
		alsrt.Contains(t, view, "D - dir1")
		alsrt.Contains(t, view, "F - test2.txt")
	})

	t.Run("preview a file", func(t *testing.T) {
		m = press(t, m, "G") // last entry is test2.txt
		m = press(t, m, "enter")

		view := testutils.StripANSI(m.View())
		alsrt.Contains(t, view, "second file", "Preview should show the file contents")
		alsrt.Equal(t, tmpDir, m.(*tui.Model).CurrentDir(), "Previewing must not change the directory")

		m = press(t, m, "esc")
		view = testutils.StripANSI(m.View())
		assert.NotContains(t, view, "second file")
	})

	t.Run("help toggle", func(t *testing.T) {
		m = press(t, m, "?")
		alsrt.True(t, m.(*tui.Model).ShowHelp())

		m = press(t, m, "?")
		alsrt.False(t, m.(*tui.Model).ShowHelp())
	})

	t.Run("quit", func(t *testing.T) {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		require.NotNil(t, cmd)
		alsrt.Equal(t, tea.QuitMsg{}, cmd())
	})
}
