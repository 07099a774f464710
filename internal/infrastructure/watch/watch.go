// Package watch reports edits to level files so they can be reloaded while
// the game runs.
package watch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// debounce is how long a file must stay quiet before it is reported; editors
// write in bursts and a reload must not read a half-written file
const debounce = 100 * time.Millisecond

// Watcher sends the base name of every changed level file on Events
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// New starts watching the given directories
func New(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events is closed once the watch goroutine exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Events)

	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()
	settled := make(chan string, 16)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isLevelFile(event.Name) {
				continue
			}
			name := event.Name
			if t, ok := timers[name]; ok {
				t.Reset(debounce)
				continue
			}
			timers[name] = time.AfterFunc(debounce, func() {
				select {
				case settled <- name:
				case <-w.closeCh:
				}
			})
		case name := <-settled:
			delete(timers, name)
			select {
			case w.Events <- filepath.Base(name):
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".json" || ext == ".tmx"
}

// Invalidator drops cached level descriptors
type Invalidator interface {
	Invalidate(file string) bool
}

// Drain hands every pending change to the cache without blocking and returns
// how many cached levels were dropped. Call it from the game loop.
func (w *Watcher) Drain(cache Invalidator, logger *log.Logger) int {
	n := 0
	for {
		select {
		case file, ok := <-w.Events:
			if !ok {
				return n
			}
			if cache.Invalidate(file) {
				n++
				logger.Info("level reloaded", "file", file)
			}
		case err := <-w.Errors:
			logger.Warn("level watcher", "err", err)
		default:
			return n
		}
	}
}
