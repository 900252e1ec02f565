package sheet

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow is how long repeat events for the same path are dropped.
// Editors and png exporters typically fire several writes per save.
const debounceWindow = 100 * time.Millisecond

// Watcher reports changes to sheet spec and image files so a running caller
// can rebuild its catalog. Rapid repeat writes to one path are coalesced
// into a single event.
type Watcher struct {
	fs     *fsnotify.Watcher
	events chan string
	errs   chan error
	done   chan struct{}
	once   sync.Once
}

// NewWatcher watches dirs for changes to .yaml, .yml and .png files.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:     fs,
		events: make(chan string, 16),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events delivers the paths of changed sheet files. The channel is closed
// when the watcher shuts down.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Errors delivers filesystem watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching. The run goroutine is the only sender on the
// outgoing channels and the only one to close them, so closing here cannot
// race a pending send.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.errs)
	defer close(w.events)

	delivered := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			now := time.Now()
			if t, ok := delivered[ev.Name]; ok && now.Sub(t) < debounceWindow {
				continue
			}
			delivered[ev.Name] = now
			if !w.send(ev.Name) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			case <-w.done:
				return
			}
		case <-w.done:
			return
		}
	}
}

// send blocks until the event is accepted or the watcher is closed,
// reporting whether run should keep going.
func (w *Watcher) send(name string) bool {
	select {
	case w.events <- name:
		return true
	case <-w.done:
		return false
	}
}

func relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	return isSheetFile(ev.Name)
}

func isSheetFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".png":
		return true
	}
	return false
}
