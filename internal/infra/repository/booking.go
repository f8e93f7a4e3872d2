package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/booking"
	"github.com/Johnmalala/ziarazetupromaxx/internal/infra"
	"github.com/Johnmalala/ziarazetupromaxx/internal/realtime"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
)

type BookingRepository struct {
	pool   *pgxpool.Pool
	feed   realtime.Feed
	logger *slog.Logger
}

func NewBookingRepository(pool *pgxpool.Pool, feed realtime.Feed, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{pool: pool, feed: feed, logger: logger}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO bookings (id, listing_id, user_id, guests, check_in_date,
		                       check_out_date, total_cents, payment_status,
		                       payment_plan, payment_ref, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID(), b.ListingID(), b.UserID(), b.Travelers().Value(),
		b.Dates().CheckIn(), b.Dates().CheckOut(), b.Total().Cents(),
		b.PaymentStatus().String(), b.PaymentPlan().String(), b.PaymentRef(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create booking", err)
	}

	userID := b.UserID()
	publishChange(ctx, r.feed, r.logger, realtime.TableBookings, realtime.OpInsert, b.ID(), &userID)
	return b.ID(), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	var snap commands.BookingSnapshot
	err := r.pool.QueryRow(ctx,
		`SELECT id, listing_id, user_id, total_cents, payment_status, payment_plan, created_at
		 FROM bookings WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.ListingID, &snap.UserID, &snap.TotalCents,
		&snap.PaymentStatus, &snap.PaymentPlan, &snap.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &snap, nil
}

func (r *BookingRepository) SettlePayment(ctx context.Context, id uuid.UUID, status booking.PaymentStatus, reference string) error {
	var userID uuid.UUID
	err := r.pool.QueryRow(ctx,
		`UPDATE bookings
		 SET payment_status = $2, payment_ref = $3, updated_at = now()
		 WHERE id = $1
		 RETURNING user_id`,
		id, status.String(), reference,
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return wrapWriteErr("failed to settle booking payment", err)
	}

	publishChange(ctx, r.feed, r.logger, realtime.TableBookings, realtime.OpUpdate, id, &userID)
	return nil
}
