package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Johnmalala/ziarazetupromaxx/internal/infra"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
)

type ProfileReadStore struct {
	pool *pgxpool.Pool
}

func NewProfileReadStore(pool *pgxpool.Pool) *ProfileReadStore {
	return &ProfileReadStore{pool: pool}
}

func (r *ProfileReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	var v queries.ProfileView
	err := r.pool.QueryRow(ctx,
		`SELECT id, full_name, email, role FROM profiles WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.FullName, &v.Email, &v.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile by ID", err)
	}
	return &v, nil
}
