package compiler

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/namegen/compiler/gen"
)

// DefaultDebounce is the quiet period after an input change before
// regenerating.
const DefaultDebounce = 100 * time.Millisecond

// Watch runs Generate once, then again after every change of an input list,
// until ctx is done. The outcome of each run is passed to onRun; a failed run
// does not stop the watch. Watch returns nil when ctx is canceled.
func Watch(ctx context.Context, c *gen.Config, debounce time.Duration, onRun func(*gen.Result, error)) error {
	if err := c.Validate(); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Directories are watched so that editors replacing a file by rename
	// keep being tracked.
	inputs := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range c.Inputs.Paths() {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		inputs[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	log := logger(c).With(slog.String("component", "watch"))
	run := func() {
		res, err := Generate(ctx, c)
		onRun(res, err)
	}
	run()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !inputs[abs] || ev.Op == fsnotify.Chmod {
				continue
			}
			log.LogAttrs(ctx, slog.LevelDebug, "input changed",
				slog.String("path", ev.Name),
				slog.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.LogAttrs(ctx, slog.LevelWarn, "watch error", slog.String("error", err.Error()))
		case <-fire:
			fire = nil
			run()
		}
	}
}
