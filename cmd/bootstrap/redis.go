package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/config"
	"github.com/Johnmalala/ziarazetupromaxx/internal/realtime"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const pingTimeout = 5 * time.Second

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewFeed,
			fx.As(new(realtime.Feed)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client := realtime.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewFeed(client *redis.Client, logger *slog.Logger) *realtime.RedisFeed {
	return realtime.NewRedisFeed(client, logger)
}
