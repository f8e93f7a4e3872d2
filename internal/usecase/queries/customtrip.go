package queries

import (
	"context"

	"github.com/google/uuid"
)

type CustomRequestQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*CustomRequestView, error)
}

type CustomRequestReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*CustomRequestView, error)
}

type customRequestQueriesImpl struct {
	repo CustomRequestReadStore
}

func NewCustomRequestQueries(repo CustomRequestReadStore) CustomRequestQueries {
	return &customRequestQueriesImpl{repo: repo}
}

func (q *customRequestQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*CustomRequestView, error) {
	if userID == uuid.Nil {
		return []*CustomRequestView{}, nil
	}
	return q.repo.FindByUserID(ctx, userID)
}
