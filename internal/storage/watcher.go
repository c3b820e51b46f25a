package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sellit-io/sellit/internal/bus"
	"github.com/sellit-io/sellit/internal/logging"
)

// Watcher republishes store mutations made by other processes as change
// events, giving every process pointed at the same data directory the same
// view a browser tab gets from the native storage event. It watches the
// FileBackend's directory; rapid bursts on one key are coalesced within the
// debounce window. Events for keys outside the active namespace are dropped.
//
// Writes made by this process also surface here, so subscribers may see a
// duplicate notification after a local Set. That matches the system being
// modeled and is harmless: observers re-read, they do not accumulate.
type Watcher struct {
	dir      string
	ns       *Namespacer
	changes  *bus.Bus
	logger   logging.Logger
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]time.Time
}

// NewWatcher prepares a watcher over the file backend's directory. debounce
// of zero publishes every event immediately.
func NewWatcher(fb *FileBackend, changes *bus.Bus, logger logging.Logger, debounce time.Duration) *Watcher {
	return &Watcher{
		dir:      fb.Dir(),
		ns:       NewNamespacer(fb),
		changes:  changes,
		logger:   logger,
		debounce: debounce,
		pending:  make(map[string]time.Time),
	}
}

// Run watches until ctx is cancelled. It owns the fsnotify watcher for its
// whole lifetime; a second Run on the same Watcher must not overlap the
// first.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start store watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info(ctx, "store watcher started", "dir", w.dir)

	var flush <-chan time.Time
	if w.debounce > 0 {
		ticker := time.NewTicker(w.debounce / 2)
		defer ticker.Stop()
		flush = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(ctx, "store watcher error", "error", err)

		case <-flush:
			w.flushSettled()
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	name := filepath.Base(event.Name)
	if strings.HasSuffix(name, tmpSuffix) {
		return
	}
	prefix := w.ns.Prefix()
	if !strings.HasPrefix(name, prefix) {
		return
	}
	// Sandbox files also carry the production prefix; drop them when the
	// active namespace is production.
	if prefix == PrefixProduction && strings.HasPrefix(name, PrefixSandbox) {
		return
	}
	key := strings.TrimPrefix(name, prefix)

	if w.debounce <= 0 {
		w.changes.Publish(bus.Event{Key: key})
		return
	}

	w.mu.Lock()
	w.pending[key] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) flushSettled() {
	now := time.Now()

	w.mu.Lock()
	settled := make([]string, 0, len(w.pending))
	for key, last := range w.pending {
		if now.Sub(last) >= w.debounce {
			settled = append(settled, key)
			delete(w.pending, key)
		}
	}
	w.mu.Unlock()

	for _, key := range settled {
		w.changes.Publish(bus.Event{Key: key})
	}
}
