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

const bookingSelect = `
	SELECT b.id, b.listing_id, b.user_id, b.total_cents, b.payment_status,
	       b.payment_plan, b.payment_ref, b.guests, b.check_in_date,
	       b.check_out_date, l.title, l.images, l.category, b.created_at
	FROM bookings b
	JOIN listings l ON l.id = b.listing_id`

// BookingReadStore serves bookings joined with the listing fields the
// bookings page renders, so the client never issues a second lookup.
type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx,
		bookingSelect+` WHERE b.user_id = $1 ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, bookingSelect+` ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list all bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx, bookingSelect+` WHERE b.id = $1`, id)
	view, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func scanBooking(row rowScanner) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.ListingID, &v.UserID, &v.TotalCents, &v.PaymentStatus,
		&v.PaymentPlan, &v.PaymentRef, &v.Guests, &v.CheckInDate,
		&v.CheckOutDate, &v.ListingTitle, &v.ListingImages, &v.ListingCategory,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
