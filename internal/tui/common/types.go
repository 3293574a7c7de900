package common

// Focus identifies which pane receives key input.
type Focus int

const (
	FocusBrowser Focus = iota
	FocusPreview
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	CurrentDir() string
	Focus() Focus
	ShowHelp() bool
	BrowserView() string
	PreviewView() string
	StatusView() string
	Width() int
	Height() int
}
