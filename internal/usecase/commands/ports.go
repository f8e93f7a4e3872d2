package commands

import (
	"context"
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/booking"
	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/customtrip"
	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/user"
	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/volunteer"
	"github.com/Johnmalala/ziarazetupromaxx/internal/payment"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side view types.

// ListingSnapshot is the slice of a listing the booking and application
// flows need. Reads go through the published-only path, so holding one
// implies the listing is visible.
type ListingSnapshot struct {
	ID         uuid.UUID
	Category   string
	PriceCents *int64
}

type BookingSnapshot struct {
	ID            uuid.UUID
	ListingID     uuid.UUID
	UserID        uuid.UUID
	TotalCents    int64
	PaymentStatus string
	PaymentPlan   string
	CreatedAt     time.Time
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, p *user.Profile) error
	UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error
}

type AuthReadStore interface {
	// FindByEmail returns the authorized view plus the stored password hash.
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
}

type ListingReads interface {
	// SnapshotByID resolves a published listing for a write flow.
	SnapshotByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	SettlePayment(ctx context.Context, id uuid.UUID, status booking.PaymentStatus, reference string) error
}

type VolunteerRepository interface {
	Create(ctx context.Context, a *volunteer.Application) (uuid.UUID, error)
}

type CustomRequestRepository interface {
	Create(ctx context.Context, r *customtrip.Request) (uuid.UUID, error)
}

// PaymentGateway is the external checkout provider. Initialization opens a
// hosted checkout sized to the plan's first charge; verification settles the
// booking after the provider's callback.
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, email string, amountCents int64, reference string) (*payment.Checkout, error)
	VerifyTransaction(ctx context.Context, reference string) (*payment.Verification, error)
}
