//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/booking"
	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/listing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingInput struct {
	category  listing.Category
	price     *int64
	travelers int
	checkIn   time.Time
	checkOut  *time.Time
	plan      booking.PaymentPlan
}

func validTourInput() bookingInput {
	price := int64(250_000_00)
	return bookingInput{
		category:  listing.CategoryTour,
		price:     &price,
		travelers: 2,
		checkIn:   time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC),
		plan:      booking.PlanFull,
	}
}

var bookedAt = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

func build(in bookingInput) (*booking.Booking, error) {
	spec := booking.ListingSpec{
		ID:         uuid.New(),
		Category:   in.category,
		PriceCents: in.price,
	}
	return booking.NewBooking(spec, uuid.New(), in.travelers, in.checkIn, in.checkOut, in.plan, bookedAt)
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := build(validTourInput())
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, 2, actual.Travelers().Value())
		assert.Equal(t, int64(500_000_00), actual.Total().Cents())
		assert.Equal(t, booking.PaymentPending, actual.PaymentStatus())
		assert.True(t, actual.IsPending())
		assert.Nil(t, actual.PaymentRef())
		assert.Equal(t, bookedAt, actual.CreatedAt())
		assert.Equal(t, bookedAt, actual.UpdatedAt())
	})

	t.Run("input validation", func(t *testing.T) {
		checkOut := time.Date(2027, 6, 8, 0, 0, 0, 0, time.UTC)
		earlier := time.Date(2027, 5, 1, 0, 0, 0, 0, time.UTC)

		cases := []struct {
			name   string
			mutate func(*bookingInput)
			errIs  error
		}{
			{
				name:   "zero travelers",
				mutate: func(in *bookingInput) { in.travelers = 0 },
				errIs:  booking.ErrInvalidTravelerCount,
			},
			{
				name:   "too many travelers",
				mutate: func(in *bookingInput) { in.travelers = 9 },
				errIs:  booking.ErrInvalidTravelerCount,
			},
			{
				name:   "maximum valid travelers",
				mutate: func(in *bookingInput) { in.travelers = 8 },
			},
			{
				name:   "zero check-in date",
				mutate: func(in *bookingInput) { in.checkIn = time.Time{} },
				errIs:  booking.ErrMissingCheckIn,
			},
			{
				name: "stay without check-out",
				mutate: func(in *bookingInput) {
					in.category = listing.CategoryStay
					in.checkOut = nil
				},
				errIs: booking.ErrMissingCheckOut,
			},
			{
				name: "stay with a valid window",
				mutate: func(in *bookingInput) {
					in.category = listing.CategoryStay
					in.checkOut = &checkOut
				},
			},
			{
				name: "check-out before check-in",
				mutate: func(in *bookingInput) {
					in.checkOut = &earlier
				},
				errIs: booking.ErrCheckOutBeforeIn,
			},
			{
				name:   "unknown payment plan",
				mutate: func(in *bookingInput) { in.plan = booking.PaymentPlan("weekly") },
				errIs:  booking.ErrInvalidPaymentPlan,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := validTourInput()
				tc.mutate(&in)
				actual, err := build(in)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, actual)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, actual)
			})
		}
	})

	t.Run("repeated submissions build distinct bookings", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 3; i++ {
			actual, err := build(validTourInput())
			require.NoError(t, err)
			assert.False(t, seen[actual.ID().String()])
			seen[actual.ID().String()] = true
		}
	})

	t.Run("nil price yields a zero total", func(t *testing.T) {
		in := validTourInput()
		in.category = listing.CategoryVolunteer
		in.price = nil

		actual, err := build(in)
		require.NoError(t, err)
		assert.Equal(t, int64(0), actual.Total().Cents())
		assert.Equal(t, int64(0), actual.FirstCharge().Cents())
	})
}

func TestFirstChargeCents(t *testing.T) {
	cases := []struct {
		name  string
		plan  booking.PaymentPlan
		total int64
		want  int64
	}{
		{name: "full plan charges everything", plan: booking.PlanFull, total: 500_000_00, want: 500_000_00},
		{name: "deposit plan charges 15 percent", plan: booking.PlanDeposit, total: 500_000_00, want: 75_000_00},
		{name: "installment plan charges a quarter", plan: booking.PlanInstallments, total: 500_000_00, want: 125_000_00},
		{name: "installment division truncates", plan: booking.PlanInstallments, total: 1003, want: 250},
		{name: "deposit of zero is zero", plan: booking.PlanDeposit, total: 0, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.plan.FirstChargeCents(tc.total))
		})
	}
}

func TestSettlePayment(t *testing.T) {
	t.Run("full plan settles to paid", func(t *testing.T) {
		actual, err := build(validTourInput())
		require.NoError(t, err)

		require.NoError(t, actual.SettlePayment("ref-1"))
		assert.Equal(t, booking.PaymentPaid, actual.PaymentStatus())
		require.NotNil(t, actual.PaymentRef())
		assert.Equal(t, "ref-1", *actual.PaymentRef())
	})

	t.Run("deposit plan settles to partial", func(t *testing.T) {
		in := validTourInput()
		in.plan = booking.PlanDeposit
		actual, err := build(in)
		require.NoError(t, err)

		require.NoError(t, actual.SettlePayment("ref-2"))
		assert.Equal(t, booking.PaymentPartial, actual.PaymentStatus())
	})

	t.Run("a settled booking stays settled", func(t *testing.T) {
		actual, err := build(validTourInput())
		require.NoError(t, err)

		require.NoError(t, actual.SettlePayment("ref-3"))
		err = actual.SettlePayment("ref-4")
		require.ErrorIs(t, err, booking.ErrAlreadySettled)
		assert.Equal(t, "ref-3", *actual.PaymentRef())
	})
}

func TestNewPaymentPlan(t *testing.T) {
	for _, valid := range []string{"full", "deposit", "lipa_mdogo_mdogo"} {
		plan, err := booking.NewPaymentPlan(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, plan.String())
	}

	_, err := booking.NewPaymentPlan("layaway")
	assert.ErrorIs(t, err, booking.ErrInvalidPaymentPlan)
}
