package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/customtrip"
	"github.com/Johnmalala/ziarazetupromaxx/internal/realtime"
)

type CustomRequestRepository struct {
	pool   *pgxpool.Pool
	feed   realtime.Feed
	logger *slog.Logger
}

func NewCustomRequestRepository(pool *pgxpool.Pool, feed realtime.Feed, logger *slog.Logger) *CustomRequestRepository {
	return &CustomRequestRepository{pool: pool, feed: feed, logger: logger}
}

func (r *CustomRequestRepository) Create(ctx context.Context, req *customtrip.Request) (uuid.UUID, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO custom_requests (id, user_id, trip_details, budget_cents, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		req.ID(), req.UserID(), req.TripDetails(), req.BudgetCents(), req.Status(), req.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create custom request", err)
	}

	userID := req.UserID()
	publishChange(ctx, r.feed, r.logger, realtime.TableCustomRequests, realtime.OpInsert, req.ID(), &userID)
	return req.ID(), nil
}
