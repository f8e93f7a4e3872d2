package queries

import (
	"context"
	"strings"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/listing"

	"github.com/google/uuid"
)

// ListingFilter narrows the published-listings list. Category and search
// terms match case-insensitively; the published-status constraint is not a
// parameter, the read store always applies it.
type ListingFilter struct {
	Category   *listing.Category
	SearchTerm string
}

func (f ListingFilter) NormalizedSearch() string {
	return strings.TrimSpace(f.SearchTerm)
}

type ListingQueries interface {
	// List returns published listings newest-first, filtered by category
	// and by a substring match against title or description.
	List(ctx context.Context, filter ListingFilter) ([]*ListingView, error)
	// GetByID returns exactly one published listing or a not-found error.
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type ListingReadStore interface {
	FindPublished(ctx context.Context, category *string, searchTerm string) ([]*ListingView, error)
	FindPublishedByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type listingQueriesImpl struct {
	repo ListingReadStore
}

func NewListingQueries(repo ListingReadStore) ListingQueries {
	return &listingQueriesImpl{repo: repo}
}

func (q *listingQueriesImpl) List(ctx context.Context, filter ListingFilter) ([]*ListingView, error) {
	var category *string
	if filter.Category != nil {
		s := filter.Category.String()
		category = &s
	}
	return q.repo.FindPublished(ctx, category, filter.NormalizedSearch())
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	return q.repo.FindPublishedByID(ctx, id)
}
