package booking

import (
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/listing"

	"github.com/google/uuid"
)

// ListingSpec is the write-side snapshot of the listing being booked; it
// keeps the factory independent of the read-side view types.
type ListingSpec struct {
	ID         uuid.UUID
	Category   listing.Category
	PriceCents *int64
}

type Booking struct {
	id            uuid.UUID
	listingID     uuid.UUID
	userID        uuid.UUID
	travelers     TravelerCount
	dates         TripDates
	total         Money
	paymentStatus PaymentStatus
	paymentPlan   PaymentPlan
	paymentRef    *string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking creates a pending booking for the given listing. The caller has
// already established that the user is authenticated and the listing is
// visible; the factory owns the trip-parameter validation and the total.
func NewBooking(
	spec ListingSpec,
	userID uuid.UUID,
	travelers int,
	checkIn time.Time,
	checkOut *time.Time,
	plan PaymentPlan,
	now time.Time,
) (*Booking, error) {
	count, err := NewTravelerCount(travelers)
	if err != nil {
		return nil, err
	}

	dates, err := NewTripDates(spec.Category, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if !plan.IsValid() {
		return nil, ErrInvalidPaymentPlan
	}

	return &Booking{
		id:            uuid.New(),
		listingID:     spec.ID,
		userID:        userID,
		travelers:     count,
		dates:         dates,
		total:         TotalFor(spec.PriceCents, count),
		paymentStatus: PaymentPending,
		paymentPlan:   plan,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id, listingID, userID uuid.UUID,
	travelers TravelerCount,
	dates TripDates,
	total Money,
	status PaymentStatus,
	plan PaymentPlan,
	paymentRef *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		listingID:     listingID,
		userID:        userID,
		travelers:     travelers,
		dates:         dates,
		total:         total,
		paymentStatus: status,
		paymentPlan:   plan,
		paymentRef:    paymentRef,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// SettlePayment records a successful external charge. The plan decides
// whether the booking is now paid in full or partially settled. A pending
// booking settles exactly once; a cancelled checkout leaves it pending and
// the submit path may run again.
func (b *Booking) SettlePayment(reference string) error {
	if b.paymentStatus != PaymentPending {
		return ErrAlreadySettled
	}
	b.paymentStatus = b.paymentPlan.SettledStatus()
	b.paymentRef = &reference
	return nil
}

// FirstCharge is the amount the external checkout opens for.
func (b *Booking) FirstCharge() Money {
	return NewMoney(b.paymentPlan.FirstChargeCents(b.total.Cents()))
}

func (b *Booking) IsPending() bool {
	return b.paymentStatus == PaymentPending
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ListingID() uuid.UUID         { return b.listingID }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) Travelers() TravelerCount     { return b.travelers }
func (b *Booking) Dates() TripDates             { return b.dates }
func (b *Booking) Total() Money                 { return b.total }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentPlan() PaymentPlan     { return b.paymentPlan }
func (b *Booking) PaymentRef() *string          { return b.paymentRef }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
