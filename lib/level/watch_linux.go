package level

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jhenstridge/go-inotify"
)

// Watch reloads the level whenever the file at path is written and passes
// the new level to onChange. It blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*Level)) error {
	logger := slog.Default().With(slog.String("module", "level"))

	watcher, err := inotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create inotify watcher: %w", err)
	}
	defer func(watcher *inotify.Watcher) {
		err := watcher.Close()
		if err != nil {
			logger.Warn(fmt.Sprintf("could not close inotify watcher: %s", err))
		}
	}(watcher)

	_, err = watcher.Watch(path)
	if err != nil {
		return fmt.Errorf("could not start inotify watcher on %s: %w", path, err)
	}
	logger.Debug(fmt.Sprintf("Watching %s", path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-watcher.Error:
			logger.Warn(fmt.Sprintf("inotify error: %s", err))
		case ev, ok := <-watcher.Event:
			if !ok {
				return nil
			}
			if ev.Mask&inotify.IN_CLOSE_WRITE == 0 {
				continue
			}
			logger.Debug("Reloading level due to inotify event")
			// let the writer finish before reading
			time.Sleep(100 * time.Millisecond)

			l, err := Load(path)
			if err != nil {
				logger.Error(fmt.Sprintf("Error loading level: %s", err))
				continue
			}
			onChange(l)
		}
	}
}
