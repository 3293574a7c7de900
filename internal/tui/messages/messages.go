// Package messages defines the messages the browser state machine reacts
// to. Requests carry a path to act on; results carry a pointer that is nil
// when the underlying read failed.
package messages

import (
	"browsd/internal/files"
)

// ChangeDirMsg asks the browser to move into a directory.
type ChangeDirMsg struct {
	Path string
}

// ReadFileMsg asks the browser to load a file.
type ReadFileMsg struct {
	Path string
}

// RefreshMsg asks the browser to re-list the directory it is showing.
type RefreshMsg struct{}

// DirListedMsg carries the outcome of a directory listing.
type DirListedMsg struct {
	Listing *files.Listing
}

// FileLoadedMsg carries the outcome of a file load.
type FileLoadedMsg struct {
	Content *files.FileContent
}
