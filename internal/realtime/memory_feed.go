package realtime

import (
	"context"
	"sync"
)

// MemoryFeed is an in-process Feed for tests and single-instance runs.
type MemoryFeed struct {
	mu   sync.Mutex
	subs map[string][]*memorySubscription
}

func NewMemoryFeed() *MemoryFeed {
	return &MemoryFeed{subs: make(map[string][]*memorySubscription)}
}

func (f *MemoryFeed) Publish(_ context.Context, change Change) error {
	f.mu.Lock()
	targets := make([]*memorySubscription, len(f.subs[change.Table]))
	copy(targets, f.subs[change.Table])
	f.mu.Unlock()

	for _, sub := range targets {
		sub.deliver(change)
	}
	publishedTotal.WithLabelValues(change.Table, string(change.Op)).Inc()
	return nil
}

func (f *MemoryFeed) Subscribe(_ context.Context, table string) (Subscription, error) {
	sub := &memorySubscription{
		feed:   f,
		table:  table,
		events: make(chan Change, 16),
	}
	f.mu.Lock()
	f.subs[table] = append(f.subs[table], sub)
	f.mu.Unlock()
	return sub, nil
}

func (f *MemoryFeed) remove(target *memorySubscription) {
	f.mu.Lock()
	defer f.mu.Unlock()
	subs := f.subs[target.table]
	for i, sub := range subs {
		if sub == target {
			f.subs[target.table] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}

type memorySubscription struct {
	feed   *MemoryFeed
	table  string
	events chan Change

	closeOnce sync.Once
	mu        sync.Mutex
	closed    bool
}

func (s *memorySubscription) deliver(change Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.events <- change:
		deliveredTotal.WithLabelValues(s.table).Inc()
	default:
		droppedTotal.WithLabelValues(s.table).Inc()
	}
}

func (s *memorySubscription) Events() <-chan Change { return s.events }

func (s *memorySubscription) Close() error {
	s.closeOnce.Do(func() {
		s.feed.remove(s)
		s.mu.Lock()
		s.closed = true
		close(s.events)
		s.mu.Unlock()
	})
	return nil
}
