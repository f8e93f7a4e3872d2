package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/volunteer"
	"github.com/Johnmalala/ziarazetupromaxx/internal/realtime"
)

type VolunteerRepository struct {
	pool   *pgxpool.Pool
	feed   realtime.Feed
	logger *slog.Logger
}

func NewVolunteerRepository(pool *pgxpool.Pool, feed realtime.Feed, logger *slog.Logger) *VolunteerRepository {
	return &VolunteerRepository{pool: pool, feed: feed, logger: logger}
}

func (r *VolunteerRepository) Create(ctx context.Context, a *volunteer.Application) (uuid.UUID, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO volunteer_applications (id, opportunity_id, user_id, name,
		                                     email, skills, motivation, availability, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID(), a.OpportunityID(), a.UserID(), a.Name(), a.Email(),
		a.Skills(), a.Motivation(), a.Availability(), a.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create volunteer application", err)
	}

	userID := a.UserID()
	publishChange(ctx, r.feed, r.logger, realtime.TableApplications, realtime.OpInsert, a.ID(), &userID)
	return a.ID(), nil
}
