package schema

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange with the schema files written since the last call,
// once writes have been quiet for debounce. Changed paths are passed in the
// order they were given to Watch. Directories are watched rather than the
// files so that editors replacing a file are seen. Watch returns when ctx
// is done.
func Watch(ctx context.Context, paths []string, debounce time.Duration, logger *slog.Logger, onChange func(paths []string)) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]string, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = p
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]struct{})
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			path, ok := watched[abs]
			if !ok {
				continue
			}

			// Debounce
			if timer != nil {
				timer.Stop()
			}
			pending[path] = struct{}{}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for _, p := range paths {
				if _, ok := pending[p]; ok {
					changed = append(changed, p)
					delete(pending, p)
				}
			}
			clear(pending)
			logger.Debug("schemas changed", "paths", changed)
			onChange(changed)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
