// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a set of texture files. It watches the
// directories containing them, so that editors that replace files by
// renaming are handled too.
type Watcher struct {

	// Changes receives the cleaned path of a watched file each time
	// it is written or created, including by renaming another file to it.
	Changes chan string

	watcher *fsnotify.Watcher
	files   map[string]bool
	done    chan struct{}
}

// NewWatcher starts watching the given files. The notify function, if
// non-nil, is called from the watcher goroutine after each change is
// queued; it is typically used to wake up the event loop.
func NewWatcher(notify func(), paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		Changes: make(chan string, 8),
		watcher: fw,
		files:   map[string]bool{},
		done:    make(chan struct{}),
	}
	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := fw.Add(d); err != nil {
			fw.Close()
			return nil, err
		}
	}
	go w.watch(notify)
	return w, nil
}

func (w *Watcher) watch(notify func()) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			// a rename is reported on the old name, which no longer exists
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			select {
			case w.Changes <- name:
			default: // full; the reader has not caught up yet
			}
			if notify != nil {
				notify()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("texture watcher error", "err", err)
		}
	}
}

// Close stops watching and releases the underlying watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
