// Package search implements search-as-you-type on top of the recipe service.
package search

import (
	"context"
	"strings"
	"sync"
	"time"
)

const DefaultDelay = 500 * time.Millisecond

// Task runs one search.
type Task[T any] func(ctx context.Context, query string) (T, error)

// Result is what a finished, still current task delivers.
type Result[T any] struct {
	Query string
	Value T
	Err   error
}

type Option func(*options)

type options struct {
	delay time.Duration
}

func WithDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.delay = d
		}
	}
}

// Debouncer runs the last submitted query once input has been quiet for the
// configured delay. A newer submission never aborts a task already running,
// but that task's result is dropped.
type Debouncer[T any] struct {
	task    Task[T]
	deliver func(Result[T])
	delay   time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	last    string
	hasLast bool
	stopped bool
	// counts scheduled and running tasks
	wg sync.WaitGroup
}

// New creates a debouncer. deliver is called on the task goroutine and must
// not call Submit.
func New[T any](ctx context.Context, task Task[T], deliver func(Result[T]), opts ...Option) *Debouncer[T] {
	o := options{delay: DefaultDelay}
	for _, opt := range opts {
		opt(&o)
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Debouncer[T]{
		task:    task,
		deliver: deliver,
		delay:   o.delay,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Submit schedules query, replacing any pending one. Repeating the last
// submitted query is a no-op.
func (d *Debouncer[T]) Submit(query string) {
	query = strings.TrimSpace(query)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || (d.hasLast && query == d.last) {
		return
	}
	d.last, d.hasLast = query, true

	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}
	d.gen++
	gen := d.gen
	d.wg.Add(1)
	d.timer = time.AfterFunc(d.delay, func() { d.run(gen, query) })
}

func (d *Debouncer[T]) run(gen uint64, query string) {
	defer d.wg.Done()

	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	v, err := d.task(d.ctx, query)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || gen != d.gen {
		return
	}
	d.deliver(Result[T]{Query: query, Value: v, Err: err})
}

// Stop drops pending work, cancels running tasks and waits for them.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}
	d.mu.Unlock()

	d.cancel()
	d.wg.Wait()
}

// Wait blocks until the pending query, if any, has run and every running
// task has returned. It must not be called concurrently with Submit.
func (d *Debouncer[T]) Wait() {
	d.wg.Wait()
}
