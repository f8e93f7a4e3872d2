package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// ListByUser returns the user's bookings newest-first, joined with the
	// listing fields the bookings page renders. A nil user short-circuits
	// to an empty result without touching the store.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListAll backs the admin export; it is never exposed to regular users.
	ListAll(ctx context.Context) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	if userID == uuid.Nil {
		return []*BookingView{}, nil
	}
	return q.repo.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	return q.repo.FindAll(ctx)
}
