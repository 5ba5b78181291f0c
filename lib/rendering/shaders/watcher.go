package shaders

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jhenstridge/go-inotify"
)

// Watcher signals on Reload when a watched shader source file has been
// written and closed. The channel has capacity one; writes that land
// while a rebuild is already pending fold into the pending signal.
type Watcher struct {
	Reload chan struct{}
}

func NewWatcher(paths ...string) (*Watcher, error) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not start inotify watcher: %w", err)
	}

	watched := 0
	for _, p := range paths {
		if p == "" {
			continue
		}
		_, err = watcher.Watch(p)
		if err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("could not watch %s: %w", p, err)
		}
		watched++
	}
	if watched == 0 {
		_ = watcher.Close()
		return nil, fmt.Errorf("no shader files to watch")
	}

	w := &Watcher{Reload: make(chan struct{}, 1)}
	go w.run(watcher)
	return w, nil
}

func (w *Watcher) run(watcher *inotify.Watcher) {
	for ev := range watcher.Event {
		if ev.Mask&inotify.IN_CLOSE_WRITE == 0 {
			continue
		}
		slog.Debug("shader source changed, scheduling rebuild", "module", "shaders")

		// editors tend to write in bursts; give them a moment to finish
		time.Sleep(100 * time.Millisecond)

		select {
		case w.Reload <- struct{}{}:
		default:
		}
	}
}
