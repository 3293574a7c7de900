package files

import (
	"os"

	"browsd/internal/config"
	"browsd/internal/errors"
)

// FileContent is the decoded text of one loaded file.
type FileContent struct {
	Path string
	Text string
}

// Loader reads whole files into text. The zero value loads files of any
// size; a max size from the configuration rejects larger ones before
// reading.
type Loader struct {
	maxSize int64
}

// NewLoader builds a Loader from the browse configuration.
func NewLoader(cfg *config.Config) *Loader {
	l := &Loader{}
	if cfg != nil {
		l.maxSize = cfg.Browse.MaxFileSize
	}
	return l
}

// Load reads path in full and decodes it as text. It fails if path is not
// a regular file, exceeds the configured max size, cannot be read, or does
// not decode cleanly.
func (l *Loader) Load(path string) (*FileContent, error) {
	if l.maxSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.NewPathError("cannot read file", path, loadErrKind(path, err), err)
		}
		if !info.Mode().IsRegular() {
			return nil, errors.NewPathError("not a regular file", path, errors.NotFile, errors.ErrNotFile)
		}
		if info.Size() > l.maxSize {
			return nil, errors.NewPathError("file too large", path, errors.TooLarge, nil)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewPathError("cannot read file", path, loadErrKind(path, err), err)
	}

	text, err := decodeText(data)
	if err != nil {
		return nil, errors.NewPathError("not a text file", path, errors.DecodeFailed, err)
	}
	return &FileContent{Path: path, Text: text}, nil
}

// loadErrKind maps a read failure to an error kind. Reading a directory
// fails on every platform, but the errno differs, so the kind comes from a
// fresh stat instead.
func loadErrKind(path string, err error) errors.ErrorKind {
	switch {
	case os.IsNotExist(err):
		return errors.NotFound
	case os.IsPermission(err):
		return errors.AccessDenied
	}
	if info, statErr := os.Stat(path); statErr == nil && !info.Mode().IsRegular() {
		return errors.NotFile
	}
	return errors.Unknown
}
