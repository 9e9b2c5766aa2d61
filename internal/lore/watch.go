package lore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrNothingToWatch is returned by Watch when none of the paths could be watched.
var ErrNothingToWatch = errors.New("no watchable lore paths")

// watchDebounce collapses an editor's burst of save events into one reload.
var watchDebounce = 250 * time.Millisecond

// Watch reloads m whenever one of the corpus files in paths changes. The
// parent directories are watched so that files replaced by rename are
// still seen. A change that leaves no loadable entries keeps the current
// corpus. It blocks until ctx is done.
func Watch(ctx context.Context, m *Matcher, paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	targets := map[string]bool{}
	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			m.log.Debug("cannot watch lore dir", zap.String("dir", dir), zap.Error(err))
			continue
		}
		dirs[dir] = true
	}
	if len(dirs) == 0 {
		return ErrNothingToWatch
	}

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

	var (
		timer *time.Timer
		fire  <-chan time.Time
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
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(ev.Name)] || ev.Op&relevant == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			n := m.refresh(ctx)
			m.log.Info("lore reloaded", zap.Int("entries", n))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			m.log.Warn("lore watch error", zap.Error(err))
		}
	}
}
