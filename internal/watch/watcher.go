// Package watch provides the --watch mode: it monitors the input directory
// with fsnotify and feeds settled image files into the pipeline one at a
// time.
package watch

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/backmassage/humpyard/internal/plugin"
)

// settleDelay is how long a file must be quiet before it is emitted. Image
// files arriving over the network produce a burst of Write events; emitting
// only after the burst ends avoids stamping half-copied files.
const settleDelay = 500 * time.Millisecond

// Watcher monitors a directory for new or modified image files.
type Watcher struct {
	Dir   string
	Files <-chan string // Read-only external channel

	files   chan string // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given input directory. Only the
// directory itself is watched, not subdirectories.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan string, 16)
	w := &Watcher{
		Dir:     dir,
		Files:   ch,
		files:   ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the input directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.files)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per file.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(settleDelay)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				// Drain pending on close. The consumer may already be
				// gone, so never block; whatever does not fit in the
				// buffer is dropped.
				for file := range pending {
					select {
					case w.files <- file:
					default:
					}
				}
				return
			}

			if !isImageFile(event.Name) {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending[event.Name] = time.Now()
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				delete(pending, event.Name)
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= settleDelay {
					select {
					case w.files <- file:
						delete(pending, file)
					default:
						// Buffer full; keep the file pending and
						// retry on the next tick so the loop stays
						// responsive to the Events channel closing.
					}
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

func isImageFile(name string) bool {
	return plugin.ImageExtensions[strings.ToLower(filepath.Ext(name))]
}
