package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Store holds the current recipe set. It is safe for concurrent use.
type Store struct {
	set atomic.Pointer[Set]
}

// NewStore returns a store holding set.
func NewStore(set *Set) *Store {
	s := &Store{}
	s.set.Store(set)
	return s
}

// Load returns the current set.
func (s *Store) Load() *Set { return s.set.Load() }

// Replace swaps in set for subsequent Load calls.
func (s *Store) Replace(set *Set) { s.set.Store(set) }

// Watch reloads path whenever it is written or recreated and hands the new
// set to onChange. A file that fails to parse is logged and skipped; the
// previous set stays in effect. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(*Set)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are still seen.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", target, err)
	}

	logger.Info("watching recipes", "path", target)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			set, err := Load(target)
			if err != nil {
				logger.Error("reload recipes", "path", target, "error", err)
				continue
			}
			logger.Info("recipes reloaded", "path", target, "components", set.Len())
			onChange(set)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("recipe watcher", "error", err)
		}
	}
}
