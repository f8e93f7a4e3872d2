//go:build unit

package watch_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/realtime"
	"github.com/Johnmalala/ziarazetupromaxx/internal/watch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher serves scripted responses and lets tests hold a fetch in
// flight until released.
type stubFetcher struct {
	mu      sync.Mutex
	calls   int
	results []fetchResult
	gates   map[int]chan struct{}
}

type fetchResult struct {
	data []string
	err  error
}

func newStubFetcher(results ...fetchResult) *stubFetcher {
	return &stubFetcher{results: results, gates: make(map[int]chan struct{})}
}

// gate makes the nth call (1-based) block until the returned channel is
// closed.
func (s *stubFetcher) gate(call int) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{})
	s.gates[call] = ch
	return ch
}

func (s *stubFetcher) fetch(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	gate := s.gates[call]
	var res fetchResult
	if call <= len(s.results) {
		res = s.results[call-1]
	} else {
		res = s.results[len(s.results)-1]
	}
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return res.data, res.err
}

func (s *stubFetcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func waitSettled[T any](t *testing.T, w *watch.Watcher[T]) watch.Snapshot[T] {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap, ok := <-w.Updates():
			require.True(t, ok, "watcher closed before settling")
			if !snap.Loading {
				return snap
			}
		case <-deadline:
			t.Fatal("watcher did not settle in time")
		}
	}
}

func TestWatcher(t *testing.T) {
	t.Run("initial fetch populates data", func(t *testing.T) {
		fetcher := newStubFetcher(fetchResult{data: []string{"a", "b"}})
		w := watch.Start(context.Background(), fetcher.fetch, watch.Options{})
		defer w.Close()

		snap := waitSettled(t, w)
		assert.Equal(t, []string{"a", "b"}, snap.Data)
		assert.Empty(t, snap.Err)
	})

	t.Run("failed fetch keeps prior data for list watchers", func(t *testing.T) {
		fetcher := newStubFetcher(
			fetchResult{data: []string{"a"}},
			fetchResult{err: errors.New("store unreachable")},
		)
		w := watch.Start(context.Background(), fetcher.fetch, watch.Options{})
		defer w.Close()
		waitSettled(t, w)

		w.Refetch()
		snap := waitSettled(t, w)
		assert.Equal(t, []string{"a"}, snap.Data)
		assert.Equal(t, "store unreachable", snap.Err)
	})

	t.Run("failed fetch clears data when ClearOnError is set", func(t *testing.T) {
		fetcher := newStubFetcher(
			fetchResult{data: []string{"a"}},
			fetchResult{err: errors.New("row vanished")},
		)
		w := watch.Start(context.Background(), fetcher.fetch, watch.Options{ClearOnError: true})
		defer w.Close()
		waitSettled(t, w)

		w.Refetch()
		snap := waitSettled(t, w)
		assert.Nil(t, snap.Data)
		assert.Equal(t, "row vanished", snap.Err)
	})

	t.Run("successful fetch clears a previous error", func(t *testing.T) {
		fetcher := newStubFetcher(
			fetchResult{err: errors.New("store unreachable")},
			fetchResult{data: []string{"a"}},
		)
		w := watch.Start(context.Background(), fetcher.fetch, watch.Options{})
		defer w.Close()
		waitSettled(t, w)

		w.Refetch()
		snap := waitSettled(t, w)
		assert.Equal(t, []string{"a"}, snap.Data)
		assert.Empty(t, snap.Err)
	})

	t.Run("refetch is idempotent with unchanged remote state", func(t *testing.T) {
		fetcher := newStubFetcher(fetchResult{data: []string{"a", "b"}})
		w := watch.Start(context.Background(), fetcher.fetch, watch.Options{})
		defer w.Close()
		waitSettled(t, w)

		w.Refetch()
		first := waitSettled(t, w)
		w.Refetch()
		second := waitSettled(t, w)
		assert.Equal(t, first.Data, second.Data)
	})
}

func TestWatcherChangeFeed(t *testing.T) {
	t.Run("notification triggers a full refetch", func(t *testing.T) {
		feed := realtime.NewMemoryFeed()
		fetcher := newStubFetcher(
			fetchResult{data: []string{"before"}},
			fetchResult{data: []string{"after"}},
		)
		w := watch.Start(context.Background(), fetcher.fetch, watch.Options{})
		defer w.Close()
		require.NoError(t, w.Observe(context.Background(), feed, "listings", nil))
		waitSettled(t, w)

		require.NoError(t, feed.Publish(context.Background(), realtime.Change{
			Table: "listings",
			Op:    realtime.OpUpdate,
		}))

		snap := waitSettled(t, w)
		assert.Equal(t, []string{"after"}, snap.Data)
		assert.Equal(t, 2, fetcher.callCount())
	})

	t.Run("non-matching notification is ignored", func(t *testing.T) {
		feed := realtime.NewMemoryFeed()
		fetcher := newStubFetcher(fetchResult{data: []string{"a"}})
		w := watch.Start(context.Background(), fetcher.fetch, watch.Options{})
		defer w.Close()
		require.NoError(t, w.Observe(context.Background(), feed, "bookings", func(realtime.Change) bool {
			return false
		}))
		waitSettled(t, w)

		require.NoError(t, feed.Publish(context.Background(), realtime.Change{
			Table: "bookings",
			Op:    realtime.OpInsert,
		}))

		// Give the pump a beat to (not) react.
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, 1, fetcher.callCount())
	})

	t.Run("notification during in-flight fetch triggers exactly one more fetch and last resolve wins", func(t *testing.T) {
		feed := realtime.NewMemoryFeed()
		fetcher := newStubFetcher(
			fetchResult{data: []string{"first"}},
			fetchResult{data: []string{"second"}},
		)
		firstGate := fetcher.gate(1)

		w := watch.Start(context.Background(), fetcher.fetch, watch.Options{})
		defer w.Close()
		require.NoError(t, w.Observe(context.Background(), feed, "bookings", nil))

		// First fetch is held in flight when the notification lands.
		require.NoError(t, feed.Publish(context.Background(), realtime.Change{
			Table: "bookings",
			Op:    realtime.OpInsert,
		}))
		// Second fetch resolves first, then the held first fetch resolves
		// late and overwrites it: last resolve wins within a generation.
		require.Eventually(t, func() bool { return fetcher.callCount() == 2 }, time.Second, 5*time.Millisecond)
		require.Eventually(t, func() bool {
			snap := w.Snapshot()
			return snap.Loading && len(snap.Data) == 1 && snap.Data[0] == "second"
		}, time.Second, 5*time.Millisecond)

		close(firstGate)
		snap := waitSettled(t, w)
		assert.Equal(t, []string{"first"}, snap.Data)
		assert.Empty(t, snap.Err)
		assert.Equal(t, 2, fetcher.callCount())
	})

	t.Run("close during in-flight fetch discards the late response", func(t *testing.T) {
		feed := realtime.NewMemoryFeed()
		fetcher := newStubFetcher(fetchResult{data: []string{"late"}})
		gate := fetcher.gate(1)

		w := watch.Start(context.Background(), fetcher.fetch, watch.Options{})
		require.NoError(t, w.Observe(context.Background(), feed, "listings", nil))

		done := make(chan struct{})
		go func() {
			defer close(done)
			require.NoError(t, w.Close())
		}()
		close(gate)
		<-done

		snap := w.Snapshot()
		assert.Nil(t, snap.Data)

		// Updates drains any buffered state and then reports closed.
		for range w.Updates() {
		}
	})

	t.Run("close is idempotent", func(t *testing.T) {
		fetcher := newStubFetcher(fetchResult{data: []string{"a"}})
		w := watch.Start(context.Background(), fetcher.fetch, watch.Options{})
		waitSettled(t, w)
		require.NoError(t, w.Close())
		require.NoError(t, w.Close())
	})
}
