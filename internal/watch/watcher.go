// Package watch keeps a live, cache-less view of one remote resource.
// A Watcher fetches on start, refetches on every matching change event,
// and exposes refetch for callers that just performed a local mutation.
// Notifications carry no data; every one of them is a full reload.
package watch

import (
	"context"
	"sync"

	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/errs"
	"github.com/Johnmalala/ziarazetupromaxx/internal/realtime"
)

// Snapshot is the observable state of a watcher. Loading is true while at
// least one fetch is in flight. Err holds the last failure's message and is
// cleared by the next successful fetch.
type Snapshot[T any] struct {
	Data    T
	Loading bool
	Err     string
}

type FetchFunc[T any] func(ctx context.Context) (T, error)

type Options struct {
	// ClearOnError resets Data to the zero value when a fetch fails.
	// Singleton watchers set this; list watchers keep the previous data
	// so a transient failure does not blank an already-rendered view.
	ClearOnError bool
}

// Watcher runs the idle -> loading -> {ready | errored} cycle for one
// resource. Overlapping fetches are allowed and race deliberately: the last
// response to resolve wins. Close bumps an internal generation so responses
// left over from before teardown are discarded instead of applied.
type Watcher[T any] struct {
	fetch        FetchFunc[T]
	clearOnError bool

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	snap     Snapshot[T]
	gen      uint64
	inFlight int
	closed   bool
	sub      realtime.Subscription

	updates chan Snapshot[T]
	wg      sync.WaitGroup
}

// Start builds a watcher and kicks off its initial fetch.
func Start[T any](ctx context.Context, fetch FetchFunc[T], opts Options) *Watcher[T] {
	wctx, cancel := context.WithCancel(ctx)
	w := &Watcher[T]{
		fetch:        fetch,
		clearOnError: opts.ClearOnError,
		ctx:          wctx,
		cancel:       cancel,
		updates:      make(chan Snapshot[T], 1),
	}
	w.Refetch()
	return w
}

// Observe opens one change stream for the table and refetches on every
// event accepted by match (nil match accepts everything). A watcher owns at
// most one stream; observing again replaces the previous stream.
func (w *Watcher[T]) Observe(ctx context.Context, feed realtime.Feed, table string, match func(realtime.Change) bool) error {
	sub, err := feed.Subscribe(ctx, table)
	if err != nil {
		return errs.Wrap(err, "failed to open change stream")
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return sub.Close()
	}
	prev := w.sub
	w.sub = sub
	w.wg.Add(1)
	w.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	go w.pump(sub, match)
	return nil
}

func (w *Watcher[T]) pump(sub realtime.Subscription, match func(realtime.Change) bool) {
	defer w.wg.Done()
	for change := range sub.Events() {
		if match != nil && !match(change) {
			continue
		}
		w.Refetch()
	}
}

// Refetch issues a fresh fetch without waiting for any in-flight one.
func (w *Watcher[T]) Refetch() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	gen := w.gen
	w.inFlight++
	w.snap.Loading = true
	w.publishLocked()
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		data, err := w.fetch(w.ctx)
		w.resolve(gen, data, err)
	}()
}

func (w *Watcher[T]) resolve(gen uint64, data T, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		// Response from before a Close. Drop it.
		return
	}
	w.inFlight--
	w.snap.Loading = w.inFlight > 0
	if err != nil {
		w.snap.Err = err.Error()
		if w.clearOnError {
			var zero T
			w.snap.Data = zero
		}
	} else {
		w.snap.Err = ""
		w.snap.Data = data
	}
	w.publishLocked()
}

// publishLocked coalesces to the latest snapshot: a slow reader sees the
// newest state, never a backlog.
func (w *Watcher[T]) publishLocked() {
	select {
	case <-w.updates:
	default:
	}
	w.updates <- w.snap
}

// Snapshot returns the current state.
func (w *Watcher[T]) Snapshot() Snapshot[T] {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snap
}

// Updates yields the latest snapshot after every state change. The channel
// is closed by Close.
func (w *Watcher[T]) Updates() <-chan Snapshot[T] {
	return w.updates
}

// Close tears the watcher down: the change stream is closed, in-flight
// fetches are cancelled and their responses discarded. Idempotent.
func (w *Watcher[T]) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.gen++
	w.inFlight = 0
	sub := w.sub
	w.mu.Unlock()

	w.cancel()
	var err error
	if sub != nil {
		err = sub.Close()
	}
	w.wg.Wait()
	close(w.updates)
	return err
}
