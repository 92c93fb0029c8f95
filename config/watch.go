package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const tuningDebounce = 100 * time.Millisecond

// TuningWatcher reloads a tuning file whenever it changes on disk.
// Parsed results arrive on Updates; the caller applies them on the game loop.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan *Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning starts watching the directory that contains path. Editors often
// replace files instead of writing them in place, so the file itself is not
// watched directly.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		Updates: make(chan *Tuning, 4),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll returns the most recent pending update without blocking.
func (w *TuningWatcher) Poll() *Tuning {
	var latest *Tuning
	for {
		select {
		case t := <-w.Updates:
			latest = t
		case err := <-w.Errors:
			log.Printf("Warning: tuning reload failed: %v", err)
		default:
			return latest
		}
	}
}

func (w *TuningWatcher) run() {
	// Reload once the file has been quiet for tuningDebounce; a single save
	// usually produces a truncate and one or more writes.
	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != w.path {
				continue
			}
			pending = time.After(tuningDebounce)
		case <-pending:
			pending = nil
			t, err := LoadTuning(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(t, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *TuningWatcher) send(t *Tuning, err error) {
	if err != nil {
		select {
		case w.Errors <- err:
		case <-w.closeCh:
		default:
		}
		return
	}
	// A full buffer drops its oldest entry; send never blocks.
	for {
		select {
		case w.Updates <- t:
			return
		case <-w.closeCh:
			return
		default:
		}
		select {
		case <-w.Updates:
		default:
		}
	}
}
