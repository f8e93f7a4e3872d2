package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/Johnmalala/ziarazetupromaxx/internal/storage"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	ListingID       uuid.UUID  `json:"listing_id"`
	ListingTitle    string     `json:"listing_title"`
	ListingCategory string     `json:"listing_category"`
	ListingImageURL string     `json:"listing_image_url"`
	Guests          int        `json:"guests"`
	CheckInDate     time.Time  `json:"check_in_date"`
	CheckOutDate    *time.Time `json:"check_out_date,omitempty"`
	TotalCents      int64      `json:"total_cents"`
	PaymentStatus   string     `json:"payment_status"`
	PaymentPlan     string     `json:"payment_plan"`
	PaymentRef      *string    `json:"payment_ref,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FromBookingView(view *queries.BookingView, resolver *storage.Resolver) *BookingResponse {
	return &BookingResponse{
		ID:              view.ID,
		ListingID:       view.ListingID,
		ListingTitle:    view.ListingTitle,
		ListingCategory: view.ListingCategory,
		ListingImageURL: resolver.ImageURL(view.ListingImages, view.ListingID.String()),
		Guests:          view.Guests,
		CheckInDate:     view.CheckInDate,
		CheckOutDate:    view.CheckOutDate,
		TotalCents:      view.TotalCents,
		PaymentStatus:   view.PaymentStatus,
		PaymentPlan:     view.PaymentPlan,
		PaymentRef:      view.PaymentRef,
		CreatedAt:       view.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView, resolver *storage.Resolver) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromBookingView(v, resolver))
	}
	return out
}

type CheckoutResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// CreateBookingResponse pairs the persisted booking with the open checkout.
// Checkout is null when there is nothing to collect.
type CreateBookingResponse struct {
	Booking  *BookingResponse  `json:"booking"`
	Checkout *CheckoutResponse `json:"checkout,omitempty"`
}

func FromCreateBookingResult(result *commands.CreateBookingResult, resolver *storage.Resolver) *CreateBookingResponse {
	resp := &CreateBookingResponse{
		Booking: FromBookingView(result.Booking, resolver),
	}
	if result.Checkout != nil {
		resp.Checkout = &CheckoutResponse{
			AuthorizationURL: result.Checkout.AuthorizationURL,
			AccessCode:       result.Checkout.AccessCode,
			Reference:        result.Checkout.Reference,
		}
	}
	return resp
}
