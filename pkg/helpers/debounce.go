package helpers

import (
	"sync"
	"time"

	"github.com/dmitrymomot/storekit/pkg/clock"
)

// DebounceOption configures a Debouncer.
type DebounceOption func(*debounceConfig)

type debounceConfig struct {
	scheduler clock.Scheduler
}

// WithDebounceScheduler replaces the timer facility, e.g. with clock.Manual in tests.
func WithDebounceScheduler(s clock.Scheduler) DebounceOption {
	return func(c *debounceConfig) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// Debouncer delays calls to fn until wait has passed without another Call.
// Only the argument of the last Call is delivered. Safe for concurrent use.
type Debouncer[T any] struct {
	fn        func(T)
	wait      time.Duration
	scheduler clock.Scheduler

	mu    sync.Mutex
	timer clock.Timer
	gen   uint64
}

// NewDebouncer wraps fn.
func NewDebouncer[T any](fn func(T), wait time.Duration, opts ...DebounceOption) *Debouncer[T] {
	cfg := &debounceConfig{scheduler: clock.Real()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Debouncer[T]{fn: fn, wait: wait, scheduler: cfg.scheduler}
}

// Call (re)starts the wait window with arg as the pending argument.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.scheduler.AfterFunc(d.wait, func() {
		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.fn(arg)
	})
}

// Cancel drops the pending call, if any.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// Debounce is the argument-less form of NewDebouncer. It returns the
// debounced function and a cancel function.
func Debounce(fn func(), wait time.Duration, opts ...DebounceOption) (call func(), cancel func()) {
	d := NewDebouncer(func(struct{}) { fn() }, wait, opts...)
	return func() { d.Call(struct{}{}) }, d.Cancel
}
