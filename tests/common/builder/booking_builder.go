//go:build unit

package builder

import (
	"time"

	reqdto "github.com/Johnmalala/ziarazetupromaxx/internal/handler/dto/request"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	ListingID       uuid.UUID
	UserID          uuid.UUID
	TotalCents      int64
	PaymentStatus   string
	PaymentPlan     string
	Guests          int
	CheckInDate     time.Time
	CheckOutDate    *time.Time
	ListingTitle    string
	ListingImages   []string
	ListingCategory string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	checkIn := now.AddDate(0, 1, 0)
	return &BookingBuilder{
		ID:              uuid.New(),
		ListingID:       uuid.New(),
		UserID:          uuid.New(),
		TotalCents:      500_000_00,
		PaymentStatus:   "pending",
		PaymentPlan:     "full",
		Guests:          2,
		CheckInDate:     checkIn,
		ListingTitle:    "Serengeti Safari",
		ListingImages:   []string{"listings/serengeti.jpg"},
		ListingCategory: "tour",
		CreatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		ListingID:       b.ListingID,
		UserID:          b.UserID,
		TotalCents:      b.TotalCents,
		PaymentStatus:   b.PaymentStatus,
		PaymentPlan:     b.PaymentPlan,
		Guests:          b.Guests,
		CheckInDate:     b.CheckInDate,
		CheckOutDate:    b.CheckOutDate,
		ListingTitle:    b.ListingTitle,
		ListingImages:   b.ListingImages,
		ListingCategory: b.ListingCategory,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ListingID:    b.ListingID,
		Travelers:    b.Guests,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		PaymentPlan:  b.PaymentPlan,
	}
}
