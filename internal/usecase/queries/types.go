package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// ListingView carries every listing column the marketing pages render. The
// structured columns (availability, features, amenities, itinerary) stay raw;
// their shape is category-dependent and only the client interprets them.
type ListingView struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  *string         `json:"description,omitempty"`
	Category     string          `json:"category"`
	PriceCents   *int64          `json:"price_cents,omitempty"`
	Rating       *float64        `json:"rating,omitempty"`
	Location     *string         `json:"location,omitempty"`
	Type         *string         `json:"type,omitempty"`
	Availability json.RawMessage `json:"availability,omitempty"`
	Images       []string        `json:"images,omitempty"`
	Features     json.RawMessage `json:"features,omitempty"`
	Amenities    json.RawMessage `json:"amenities,omitempty"`
	Itinerary    json.RawMessage `json:"itinerary,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Subtype satisfies the secondary-filter shape.
func (v *ListingView) Subtype() string {
	if v.Type == nil {
		return ""
	}
	return *v.Type
}

// BookingView is a booking joined with the listing fields the bookings list
// renders.
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	ListingID       uuid.UUID  `json:"listing_id"`
	UserID          uuid.UUID  `json:"user_id"`
	TotalCents      int64      `json:"total_cents"`
	PaymentStatus   string     `json:"payment_status"`
	PaymentPlan     string     `json:"payment_plan"`
	PaymentRef      *string    `json:"payment_ref,omitempty"`
	Guests          int        `json:"guests"`
	CheckInDate     time.Time  `json:"check_in_date"`
	CheckOutDate    *time.Time `json:"check_out_date,omitempty"`
	ListingTitle    string     `json:"listing_title"`
	ListingImages   []string   `json:"listing_images,omitempty"`
	ListingCategory string     `json:"listing_category"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ProfileView struct {
	ID       uuid.UUID `json:"id"`
	FullName *string   `json:"full_name,omitempty"`
	Email    *string   `json:"email,omitempty"`
	Role     string    `json:"role"`
}

type CustomRequestView struct {
	ID          uuid.UUID `json:"id"`
	TripDetails string    `json:"trip_details"`
	BudgetCents *int64    `json:"budget_cents,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
