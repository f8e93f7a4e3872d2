package realtime

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/errs"
)

const channelPrefix = "changes:"

// RedisFeed broadcasts changes over Redis pub/sub so every running instance
// sees writes made by any of them.
type RedisFeed struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisFeed(client *redis.Client, logger *slog.Logger) *RedisFeed {
	return &RedisFeed{client: client, logger: logger}
}

func (f *RedisFeed) Publish(ctx context.Context, change Change) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return errs.Wrap(err, "failed to marshal change event")
	}
	if err := f.client.Publish(ctx, channelPrefix+change.Table, payload).Err(); err != nil {
		return errs.Wrap(err, "failed to publish change event")
	}
	publishedTotal.WithLabelValues(change.Table, string(change.Op)).Inc()
	return nil
}

func (f *RedisFeed) Subscribe(ctx context.Context, table string) (Subscription, error) {
	pubsub := f.client.Subscribe(ctx, channelPrefix+table)
	// Force the subscription onto the wire before we report success.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errs.Wrap(err, "failed to subscribe to change feed")
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		events: make(chan Change, 16),
	}
	go sub.pump(f.logger, table)
	return sub, nil
}

type redisSubscription struct {
	pubsub *redis.PubSub
	events chan Change
}

func (s *redisSubscription) pump(logger *slog.Logger, table string) {
	defer close(s.events)
	for msg := range s.pubsub.Channel() {
		var change Change
		if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
			logger.Warn("dropping malformed change event", "table", table, "error", err)
			continue
		}
		select {
		case s.events <- change:
			deliveredTotal.WithLabelValues(table).Inc()
		default:
			// A stalled subscriber must not block the pump. Watchers refetch
			// on the next event anyway.
			droppedTotal.WithLabelValues(table).Inc()
		}
	}
}

func (s *redisSubscription) Events() <-chan Change { return s.events }

func (s *redisSubscription) Close() error { return s.pubsub.Close() }

// NewRedisClient builds the shared Redis client from configuration.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
