package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"browsd/internal/config"
	"browsd/internal/tui/styles"
	"browsd/pkg/testutils"
)

func TestStatusBar(t *testing.T) {
	sb := NewStatusBar(styles.New(nil))
	assert.Equal(t, "", sb.View())

	sb.SetText("2 entries")
	assert.Contains(t, testutils.StripANSI(sb.View()), "2 entries")

	cmd := sb.SetLoading(true)
	require.NotNil(t, cmd, "turning the spinner on starts its tick")
	assert.True(t, sb.Loading())
	assert.Nil(t, sb.SetLoading(true), "already spinning")

	// The spinner advances on its own tick messages
	assert.NotNil(t, sb.Update(sb.spinner.Tick()))

	assert.Nil(t, sb.SetLoading(false))
	assert.False(t, sb.Loading())
	assert.Contains(t, testutils.StripANSI(sb.View()), "2 entries")
}

func TestFileView(t *testing.T) {
	v := NewFileView(config.NewTestConfig(), styles.New(nil))
	v.SetSize(60, 10)

	assert.True(t, v.Empty())
	assert.Equal(t, "", v.View())

	v.Show("/tmp/readme.txt", "hi")
	assert.False(t, v.Empty())
	assert.Equal(t, "/tmp/readme.txt", v.Path())
	assert.Equal(t, "hi", v.Text())

	view := testutils.StripANSI(v.View())
	assert.Contains(t, view, "/tmp/readme.txt")
	assert.Contains(t, view, "hi")

	// A new read replaces the old contents wholesale
	v.Show("/tmp/other.txt", "second")
	view = testutils.StripANSI(v.View())
	assert.Contains(t, view, "second")
	assert.NotContains(t, view, "hi")

	v.Clear()
	assert.True(t, v.Empty())
	assert.Equal(t, "", v.View())
}

func TestHighlightText(t *testing.T) {
	src := "package main\n\nfunc main() {}\n"

	out := highlightText("main.go", src, "nord")
	assert.Contains(t, testutils.StripANSI(out), "package main")

	// Unknown extensions and themes still come back intact
	out = highlightText("notes.xyzzy", "plain words", "no-such-theme")
	assert.Contains(t, testutils.StripANSI(out), "plain words")
}
