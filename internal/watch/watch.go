// Package watch re-runs work whenever a graph description file changes on
// disk. It backs the CLI's watch mode, the edit-and-replay loop used while
// tuning a graph for animation.
package watch

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kimestelle/algorithm-visualizer/internal/metrics"
)

// debounce coalesces editor write bursts (truncate + write + rename) into a
// single reload.
const debounce = 100 * time.Millisecond

// File starts watching path and invokes onChange after every write or
// create event, debounced. Call the returned stop function to shut the
// watcher down.
func File(path string, onChange func()) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
					fire = timer.C
				} else {
					timer.Reset(debounce)
				}
			case <-fire:
				timer = nil
				fire = nil
				metrics.GraphReloads.Inc()
				onChange()
			case <-w.Errors:
				// Watcher errors are transient here; keep watching.
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}
