// Package watch emits an event when a theme file changes on disk. It watches
// the file's directory rather than the file itself because most editors save
// by renaming a temp file over the target, which would otherwise kill the
// watch.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle before
// emitting an event.
const DefaultDebounce = 250 * time.Millisecond

// Event signals that the watched file changed.
type Event struct {
	Path string
	At   time.Time
}

// Watcher watches a single file and coalesces bursts of writes into one
// event per settle period.
type Watcher struct {
	path     string
	basename string
	debounce time.Duration

	fsw    *fsnotify.Watcher
	events chan Event
	errors chan error

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New starts watching path. A non-positive debounce selects DefaultDebounce.
func New(path string, debounce time.Duration) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		path:     absPath,
		basename: filepath.Base(absPath),
		debounce: debounce,
		fsw:      fsw,
		events:   make(chan Event, 16),
		errors:   make(chan error, 16),
		closeCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the event channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()

	close(w.events)
	close(w.errors)

	return w.fsw.Close()
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.matches(fsEvent) {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			w.sendEvent(Event{Path: w.path, At: time.Now()})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// matches filters directory noise down to changes of the watched file.
func (w *Watcher) matches(fsEvent fsnotify.Event) bool {
	if filepath.Base(fsEvent.Name) != w.basename {
		return false
	}
	return fsEvent.Op.Has(fsnotify.Write) ||
		fsEvent.Op.Has(fsnotify.Create) ||
		fsEvent.Op.Has(fsnotify.Rename)
}

func (w *Watcher) sendEvent(event Event) {
	select {
	case w.events <- event:
	default:
		// Channel full, drop event
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
		// Channel full, drop error
	}
}
