package commands

import (
	"context"
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/booking"
	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/listing"
	"github.com/Johnmalala/ziarazetupromaxx/internal/infra"
	"github.com/Johnmalala/ziarazetupromaxx/internal/payment"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/clock"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/errs"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound      = errs.New("listing not found")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrBookingValidation    = errs.New("booking validation failed")
	ErrPaymentInitFailed    = errs.New("payment initialization failed")
	ErrPaymentNotSettled    = errs.New("payment not settled")
	ErrPaymentAlreadyDone   = errs.New("booking payment already settled")
	ErrStoreOperationFailed = errs.New("store operation failed")
)

type CreateBookingParams struct {
	ListingID    uuid.UUID
	Travelers    int
	CheckInDate  time.Time
	CheckOutDate *time.Time
	PaymentPlan  string
}

// CreateBookingResult carries the persisted booking together with the open
// checkout. A nil Checkout means the charge is zero (volunteer listings) and
// there is nothing to collect.
type CreateBookingResult struct {
	Booking  *queries.BookingView
	Checkout *payment.Checkout
}

type BookingCommands interface {
	// CreateBooking inserts exactly one pending booking per call and opens
	// the external checkout for the plan's first charge. Repeated submits
	// create repeated bookings; there is no dedup across calls.
	CreateBooking(ctx context.Context, params CreateBookingParams, userID uuid.UUID, userEmail string) (*CreateBookingResult, error)
	// ConfirmPayment verifies the provider reference and settles the
	// booking to paid or partial according to its plan. A cancelled
	// checkout never reaches this path; the booking stays pending.
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	listingReads   ListingReads
	gateway        PaymentGateway
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	listingReads ListingReads,
	gateway PaymentGateway,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		listingReads:   listingReads,
		gateway:        gateway,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (b *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	params CreateBookingParams,
	userID uuid.UUID,
	userEmail string,
) (*CreateBookingResult, error) {
	snap, err := b.listingReads.SnapshotByID(ctx, params.ListingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	category, err := listing.NewCategory(snap.Category)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}

	plan, err := booking.NewPaymentPlan(params.PaymentPlan)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}

	entity, err := booking.NewBooking(
		booking.ListingSpec{ID: snap.ID, Category: category, PriceCents: snap.PriceCents},
		userID,
		params.Travelers,
		params.CheckInDate,
		params.CheckOutDate,
		plan,
		b.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}

	bookingID, err := b.bookingRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	// Read-after-write: the joined view is what the confirmation screen
	// renders.
	view, err := b.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	charge := entity.FirstCharge()
	if charge.Cents() == 0 {
		return &CreateBookingResult{Booking: view}, nil
	}

	// The booking id doubles as the provider reference, same as the web
	// checkout did.
	checkout, err := b.gateway.InitializeTransaction(ctx, userEmail, charge.Cents(), bookingID.String())
	if err != nil {
		// The pending booking survives a checkout failure; the user can
		// retry payment from the bookings page.
		return &CreateBookingResult{Booking: view}, errs.Mark(err, ErrPaymentInitFailed)
	}

	return &CreateBookingResult{Booking: view, Checkout: checkout}, nil
}

func (b *bookingCommandsImpl) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) (*queries.BookingView, error) {
	snap, err := b.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	// Bookings settle only for their owner.
	if snap.UserID != userID {
		return nil, ErrBookingNotFound
	}

	if booking.PaymentStatus(snap.PaymentStatus) != booking.PaymentPending {
		return nil, ErrPaymentAlreadyDone
	}

	verification, err := b.gateway.VerifyTransaction(ctx, bookingID.String())
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentNotSettled)
	}
	if !verification.Succeeded() {
		return nil, ErrPaymentNotSettled
	}

	plan, err := booking.NewPaymentPlan(snap.PaymentPlan)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	if err := b.bookingRepo.SettlePayment(ctx, bookingID, plan.SettledStatus(), verification.Reference); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	view, err := b.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return view, nil
}
