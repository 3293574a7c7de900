// Package files provides directory listing and text file loading for the
// browsd application. A Lister resolves the direct children of a directory
// into sorted entries, and a Loader reads a single file into decoded text.
package files

import (
	"sort"
)

// Entry is a single child of a listed directory.
type Entry struct {
	Path  string // absolute or caller-relative path to the child
	Name  string // base name within the parent directory
	IsDir bool
}

// NewDir builds a directory entry.
func NewDir(path, name string) Entry {
	return Entry{Path: path, Name: name, IsDir: true}
}

// NewFile builds a regular file entry.
func NewFile(path, name string) Entry {
	return Entry{Path: path, Name: name, IsDir: false}
}

// Label renders the entry the way the browser displays it, with a kind
// marker before the name.
func (e Entry) Label() string {
	if e.IsDir {
		return "D - " + e.Name
	}
	return "F - " + e.Name
}

// sortEntries orders a listing in place: directories before files, and
// lexicographic by name within each group.
func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir && !entries[j].IsDir {
			return true
		}
		if !entries[i].IsDir && entries[j].IsDir {
			return false
		}
		return entries[i].Name < entries[j].Name
	})
}
