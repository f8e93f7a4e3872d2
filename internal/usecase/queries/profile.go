package queries

import (
	"context"

	"github.com/google/uuid"
)

type ProfileQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProfileView, error)
}

type ProfileReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProfileView, error)
}

type profileQueriesImpl struct {
	repo ProfileReadStore
}

func NewProfileQueries(repo ProfileReadStore) ProfileQueries {
	return &profileQueriesImpl{repo: repo}
}

func (q *profileQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProfileView, error) {
	return q.repo.FindByID(ctx, id)
}
