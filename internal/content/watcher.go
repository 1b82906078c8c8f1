package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"storefront/internal/debounce"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultReloadDebounce collapses the burst of events an editor save emits.
const DefaultReloadDebounce = 250 * time.Millisecond

// Watcher reloads a content file whenever it changes on disk.
// It watches the parent directory so rename-on-save editors are handled.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	onChange func(*Content, error)
	reload   *debounce.Debouncer
	logger   *zap.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	reloads  int
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long events must settle before reloading.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.reload = debounce.New(d)
		}
	}
}

// WithWatchLogger sets the watcher's logger.
func WithWatchLogger(l *zap.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWatcher creates a watcher for path. onChange receives the reloaded
// content, or the error that prevented loading it.
func NewWatcher(path string, onChange func(*Content, error), opts ...WatcherOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w := &Watcher{
		watcher:  fw,
		path:     abs,
		onChange: onChange,
		reload:   debounce.New(DefaultReloadDebounce),
		logger:   zap.NewNop(),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching. It is non-blocking; events are handled on a
// goroutine until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.logger.Debug("watching content", zap.String("path", w.path))

	go w.run(ctx)
	return nil
}

// Stop ends watching, drops any pending reload and waits for the event
// loop to exit. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.reload.Cancel()

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("error closing watcher", zap.Error(err))
	}
}

// Reloads returns how many reloads have been delivered.
func (w *Watcher) Reloads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	w.logger.Debug("content event", zap.String("op", event.Op.String()))
	w.reload.Debounce(w.deliver)
}

func (w *Watcher) deliver() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.reloads++
	w.mu.Unlock()

	c, err := Load(w.path)
	if err != nil {
		w.logger.Warn("content reload failed", zap.Error(err))
	} else {
		w.logger.Info("content reloaded", zap.String("app", c.App.Name))
	}
	w.onChange(c, err)
}
