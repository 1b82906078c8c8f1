// Package share copies the listing link to the clipboard and keeps a short
// acknowledgement flag raised afterwards.
package share

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storefront/internal/debounce"

	"go.uber.org/zap"
)

// DefaultWindow is how long the acknowledgement stays raised.
const DefaultWindow = 2000 * time.Millisecond

// ClipboardError wraps a failed clipboard write.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("copy to clipboard: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// Action writes a payload to the clipboard and raises the feedback flag for
// a fixed window. Successive successes restart the window; only one reset
// timer exists at a time.
type Action struct {
	clip   Clipboard
	reset  *debounce.Debouncer
	logger *zap.Logger
	notify func(active bool)

	mu     sync.Mutex
	active bool

	subMu   sync.Mutex
	subs    map[int]chan bool
	nextSub int
}

// Option configures an Action.
type Option func(*actionOptions)

type actionOptions struct {
	window time.Duration
	logger *zap.Logger
	notify func(bool)
}

// WithWindow overrides the feedback window.
func WithWindow(d time.Duration) Option {
	return func(o *actionOptions) {
		if d > 0 {
			o.window = d
		}
	}
}

// WithLogger sets the diagnostic sink for clipboard failures.
func WithLogger(l *zap.Logger) Option {
	return func(o *actionOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNotify registers a callback invoked whenever the flag changes.
// It may be called from a timer goroutine.
func WithNotify(fn func(active bool)) Option {
	return func(o *actionOptions) {
		o.notify = fn
	}
}

// NewAction creates an Action writing to clip.
func NewAction(clip Clipboard, opts ...Option) *Action {
	o := actionOptions{
		window: DefaultWindow,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Action{
		clip:   clip,
		reset:  debounce.New(o.window),
		logger: o.logger,
		notify: o.notify,
		subs:   make(map[int]chan bool),
	}
}

// Window returns the feedback window.
func (a *Action) Window() time.Duration {
	return a.reset.Duration()
}

// Invoke copies payload to the clipboard. On success the feedback flag is
// raised and its reset is (re)scheduled. On failure the flag is left alone,
// the error is logged and returned as a *ClipboardError; callers are free to
// ignore it.
func (a *Action) Invoke(ctx context.Context, payload string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := a.clip.WriteAll(payload); err != nil {
		a.logger.Warn("failed to copy to clipboard", zap.Error(err))
		return &ClipboardError{Err: err}
	}

	a.logger.Debug("copied to clipboard", zap.Int("bytes", len(payload)))

	a.mu.Lock()
	changed := !a.active
	a.active = true
	a.reset.Debounce(a.expire)
	a.mu.Unlock()

	if changed {
		a.emit(true)
	}
	return nil
}

// Active reports whether the acknowledgement is currently raised.
func (a *Action) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Close cancels a pending reset. The flag keeps its current value.
func (a *Action) Close() {
	a.reset.Cancel()
}

// expire lowers the flag unless a newer success rescheduled the reset
// while this callback was waiting for the lock.
func (a *Action) expire() {
	a.mu.Lock()
	if a.reset.Pending() || !a.active {
		a.mu.Unlock()
		return
	}
	a.active = false
	a.mu.Unlock()

	a.emit(false)
}

// Subscribe returns a channel that receives every change of the flag and a
// cancel func that unregisters and closes it. Slow subscribers miss
// intermediate values rather than blocking the timer.
func (a *Action) Subscribe() (<-chan bool, func()) {
	ch := make(chan bool, 4)

	a.subMu.Lock()
	a.nextSub++
	id := a.nextSub
	a.subs[id] = ch
	a.subMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			a.subMu.Lock()
			delete(a.subs, id)
			close(ch)
			a.subMu.Unlock()
		})
	}
	return ch, cancel
}

// Subscribers returns the number of live subscriptions.
func (a *Action) Subscribers() int {
	a.subMu.Lock()
	defer a.subMu.Unlock()
	return len(a.subs)
}

func (a *Action) emit(active bool) {
	if a.notify != nil {
		a.notify(active)
	}

	a.subMu.Lock()
	defer a.subMu.Unlock()
	for _, ch := range a.subs {
		select {
		case ch <- active:
		default:
		}
	}
}
