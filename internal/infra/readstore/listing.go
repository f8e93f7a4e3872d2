package readstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Johnmalala/ziarazetupromaxx/internal/infra"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
)

const listingColumns = `id, title, description, category, price_cents, rating, location, type,
	availability, images, features, amenities, itinerary, status, created_at`

// ListingReadStore serves the public catalog. Every query is constrained to
// published rows here, not in the callers: drafts never cross this boundary
// regardless of what parameters come in.
type ListingReadStore struct {
	pool *pgxpool.Pool
}

func NewListingReadStore(pool *pgxpool.Pool) *ListingReadStore {
	return &ListingReadStore{pool: pool}
}

func (r *ListingReadStore) FindPublished(ctx context.Context, category *string, searchTerm string) ([]*queries.ListingView, error) {
	var (
		conds = []string{"lower(status) = 'published'"}
		args  []any
	)
	if category != nil {
		args = append(args, *category)
		conds = append(conds, fmt.Sprintf("lower(category) = lower($%d)", len(args)))
	}
	if searchTerm != "" {
		args = append(args, "%"+searchTerm+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	query := fmt.Sprintf(
		`SELECT %s FROM listings WHERE %s ORDER BY created_at DESC`,
		listingColumns, strings.Join(conds, " AND "),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list published listings", err)
	}
	defer rows.Close()

	views := []*queries.ListingView{}
	for rows.Next() {
		view, err := scanListing(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan listing", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read listing rows", err)
	}
	return views, nil
}

func (r *ListingReadStore) FindPublishedByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM listings WHERE id = $1 AND lower(status) = 'published'`,
		listingColumns,
	)

	row := r.pool.QueryRow(ctx, query, id)
	view, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}
	return view, nil
}

// SnapshotByID resolves the write-side slice of a published listing.
func (r *ListingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*commands.ListingSnapshot, error) {
	var snap commands.ListingSnapshot
	err := r.pool.QueryRow(ctx,
		`SELECT id, category, price_cents FROM listings WHERE id = $1 AND lower(status) = 'published'`,
		id,
	).Scan(&snap.ID, &snap.Category, &snap.PriceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to snapshot listing", err)
	}
	return &snap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*queries.ListingView, error) {
	var v queries.ListingView
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.Category, &v.PriceCents, &v.Rating,
		&v.Location, &v.Type, &v.Availability, &v.Images, &v.Features,
		&v.Amenities, &v.Itinerary, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
