package booking

import (
	"errors"
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/listing"
)

var (
	ErrInvalidTravelerCount = errors.New("traveler count must be between 1 and 8")
	ErrMissingCheckIn       = errors.New("check-in date is required")
	ErrMissingCheckOut      = errors.New("check-out date is required for stays")
	ErrCheckOutBeforeIn     = errors.New("check-out date must be after check-in date")
	ErrInvalidPaymentPlan   = errors.New("invalid payment plan")
	ErrAlreadySettled       = errors.New("booking payment is already settled")
)

const maxTravelers = 8

type TravelerCount struct {
	value int
}

func NewTravelerCount(n int) (TravelerCount, error) {
	if n < 1 || n > maxTravelers {
		return TravelerCount{}, ErrInvalidTravelerCount
	}
	return TravelerCount{value: n}, nil
}

func (t TravelerCount) Value() int {
	return t.value
}

// TripDates carries the requested stay window. Check-in is always required;
// check-out only applies to stay listings.
type TripDates struct {
	checkIn  time.Time
	checkOut *time.Time
}

func NewTripDates(category listing.Category, checkIn time.Time, checkOut *time.Time) (TripDates, error) {
	if checkIn.IsZero() {
		return TripDates{}, ErrMissingCheckIn
	}
	if category == listing.CategoryStay {
		if checkOut == nil || checkOut.IsZero() {
			return TripDates{}, ErrMissingCheckOut
		}
	}
	if checkOut != nil && !checkOut.IsZero() && !checkOut.After(checkIn) {
		return TripDates{}, ErrCheckOutBeforeIn
	}
	return TripDates{checkIn: checkIn, checkOut: checkOut}, nil
}

func (d TripDates) CheckIn() time.Time   { return d.checkIn }
func (d TripDates) CheckOut() *time.Time { return d.checkOut }

// Money is an amount in the currency minor unit (KES cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

// TotalFor multiplies a per-person price by the traveler count. A nil price
// (volunteer listings) yields a zero-amount total.
func TotalFor(priceCents *int64, travelers TravelerCount) Money {
	if priceCents == nil {
		return Money{}
	}
	return Money{cents: *priceCents * int64(travelers.Value())}
}
