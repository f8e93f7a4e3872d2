package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/user"
	"github.com/Johnmalala/ziarazetupromaxx/internal/infra"
	"github.com/Johnmalala/ziarazetupromaxx/internal/realtime"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create user", err)
	}
	return u.ID(), nil
}

// ProfileRepository writes the public profile row that mirrors a user.
type ProfileRepository struct {
	pool   *pgxpool.Pool
	feed   realtime.Feed
	logger *slog.Logger
}

func NewProfileRepository(pool *pgxpool.Pool, feed realtime.Feed, logger *slog.Logger) *ProfileRepository {
	return &ProfileRepository{pool: pool, feed: feed, logger: logger}
}

func (r *ProfileRepository) Create(ctx context.Context, p *user.Profile) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO profiles (id, full_name, email, role)
		 VALUES ($1, $2, $3, $4)`,
		p.ID(), p.FullName().Value(), p.Email().Value(), p.Role().String(),
	)
	if err != nil {
		return wrapWriteErr("failed to create profile", err)
	}
	publishChange(ctx, r.feed, r.logger, realtime.TableProfiles, realtime.OpInsert, p.ID(), nil)
	return nil
}

func (r *ProfileRepository) UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE profiles SET full_name = $2 WHERE id = $1`,
		id, fullName,
	)
	if err != nil {
		return wrapWriteErr("failed to update profile name", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	publishChange(ctx, r.feed, r.logger, realtime.TableProfiles, realtime.OpUpdate, id, nil)
	return nil
}
