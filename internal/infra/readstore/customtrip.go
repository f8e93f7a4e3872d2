package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Johnmalala/ziarazetupromaxx/internal/infra"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
)

type CustomRequestReadStore struct {
	pool *pgxpool.Pool
}

func NewCustomRequestReadStore(pool *pgxpool.Pool) *CustomRequestReadStore {
	return &CustomRequestReadStore{pool: pool}
}

func (r *CustomRequestReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.CustomRequestView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, trip_details, budget_cents, status, created_at
		 FROM custom_requests
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list custom requests by user", err)
	}
	defer rows.Close()

	views := []*queries.CustomRequestView{}
	for rows.Next() {
		var v queries.CustomRequestView
		if err := rows.Scan(&v.ID, &v.TripDetails, &v.BudgetCents, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan custom request", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read custom request rows", err)
	}
	return views, nil
}
