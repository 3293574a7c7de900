package files

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"browsd/internal/config"
	"browsd/internal/errors"
	"browsd/internal/log"
)

// Listing is the result of reading one directory: the directory itself and
// its direct children, sorted directories-first and by name within each
// group.
type Listing struct {
	Dir     string
	Entries []Entry
}

// Lister reads directories into Listings. The zero value lists every child
// it can classify; options from the configuration narrow that down.
type Lister struct {
	skipHidden bool
	ignore     []glob.Glob
}

// NewLister builds a Lister from the browse configuration. Ignore patterns
// that fail to compile are logged and dropped; Config.Validate reports them
// up front.
func NewLister(cfg *config.Config) *Lister {
	l := &Lister{}
	if cfg == nil {
		return l
	}
	l.skipHidden = !cfg.Browse.ShowHidden
	for _, pattern := range cfg.Browse.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			log.Warnf("Skipping bad ignore pattern %q: %v", pattern, err)
			continue
		}
		l.ignore = append(l.ignore, g)
	}
	return l
}

// List reads the direct children of path. Children are classified by what
// they are now: directories and regular files are kept, anything else is
// skipped, as is any child whose type cannot be determined. An empty
// directory yields a Listing with no entries.
func (l *Lister) List(path string) (*Listing, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.NewPathError("cannot list directory", path, listErrKind(path, err), err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if l.skipName(name) {
			continue
		}
		full := filepath.Join(path, name)
		info, err := os.Stat(full)
		if err != nil {
			log.Debugf("Skipping %s: %v", full, err)
			continue
		}
		switch {
		case info.IsDir():
			entries = append(entries, NewDir(full, name))
		case info.Mode().IsRegular():
			entries = append(entries, NewFile(full, name))
		}
	}

	sortEntries(entries)
	return &Listing{Dir: path, Entries: entries}, nil
}

func (l *Lister) skipName(name string) bool {
	if l.skipHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range l.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// listErrKind maps a ReadDir failure to an error kind without relying on
// platform errno values.
func listErrKind(path string, err error) errors.ErrorKind {
	switch {
	case os.IsNotExist(err):
		return errors.NotFound
	case os.IsPermission(err):
		return errors.AccessDenied
	}
	if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
		return errors.NotDirectory
	}
	return errors.Unknown
}

// IsDir reports whether path currently names a directory. Symlinks are
// followed, so a link to a directory counts.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path currently names a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
