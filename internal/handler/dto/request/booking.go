package request

import (
	"time"

	"github.com/google/uuid"

	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ListingID    uuid.UUID  `json:"listing_id" binding:"required"`
	Travelers    int        `json:"travelers" binding:"required,min=1"`
	CheckInDate  time.Time  `json:"check_in_date" binding:"required"`
	CheckOutDate *time.Time `json:"check_out_date,omitempty"`
	PaymentPlan  string     `json:"payment_plan" binding:"required"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ListingID:    r.ListingID,
		Travelers:    r.Travelers,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		PaymentPlan:  r.PaymentPlan,
	}
}
