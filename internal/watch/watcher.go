// Package watch notifies the browser when the directory it is showing
// changes on disk, so the listing can be refreshed without waiting for
// the periodic timer.
package watch

import (
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"browsd/internal/errors"
	"browsd/internal/log"
)

// Change reports that the watched directory was modified and its listing
// may be stale.
type Change struct {
	Dir       string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors a single directory for changes using fsnotify. The
// watched directory follows navigation: each Watch call replaces the
// previous target.
type Watcher struct {
	// Directory currently being watched, empty before the first Watch
	current string

	// Channel delivering change notifications
	changes chan Change

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for running state and the current directory
	mutex sync.RWMutex

	// Whether the event loop is running
	running bool
}

// New creates a directory watcher.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "cannot create file watcher")
	}

	return &Watcher{
		changes:   make(chan Change, 10),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Watch points the watcher at dir, dropping the previous target if there
// was one.
func (w *Watcher) Watch(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.NewPathError("cannot access directory", dir, errors.NotFound, err)
	}
	if !info.IsDir() {
		return errors.NewPathError("cannot watch", dir, errors.NotDirectory, errors.ErrNotDirectory)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.current == dir {
		return nil
	}
	if w.current != "" {
		// The old watch may already be gone if the directory was removed;
		// fsnotify drops those on its own.
		if err := w.fsWatcher.Remove(w.current); err != nil {
			log.Debugf("Releasing watch on %s: %v", w.current, err)
		}
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		w.current = ""
		return errors.NewPathError("cannot watch directory", dir, errors.WatchFailed, err)
	}
	w.current = dir
	log.LogWithFields(log.F("directory", dir)).Debug("Watching directory")
	return nil
}

// Dir returns the directory currently being watched.
func (w *Watcher) Dir() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.current
}

// Changes returns the channel that delivers change notifications.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins the event processing loop.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	// Create a new stop channel each time Start is called
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}

				// Chmod alone does not change what the listing shows
				if event.Op == fsnotify.Chmod {
					continue
				}

				change := Change{
					Dir:       w.Dir(),
					Timestamp: time.Now(),
					Op:        event.Op,
				}

				// Send non-blockingly; a full channel means a refresh is
				// already pending, so dropping is harmless
				select {
				case w.changes <- change:
				default:
					log.Debugf("Change channel full, dropped event for %s", event.Name)
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Error("File watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	log.Debug("Watcher started")
	return nil
}

// Stop halts the event processing loop and closes the change channel.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing file watcher")
	}

	w.running = false

	// Close the public channel after the loop is signalled, under the
	// same lock that guards running
	close(w.changes)

	log.Debug("Watcher stopped")
}

// IsRunning returns whether the watcher is currently active.
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
