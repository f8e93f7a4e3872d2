package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Johnmalala/ziarazetupromaxx/internal/storage"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
)

type ListingResponse struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Description     *string         `json:"description,omitempty"`
	Category        string          `json:"category"`
	PriceCents      *int64          `json:"price_cents,omitempty"`
	Rating          *float64        `json:"rating,omitempty"`
	Location        *string         `json:"location,omitempty"`
	Type            *string         `json:"type,omitempty"`
	Availability    json.RawMessage `json:"availability,omitempty"`
	Images          []string        `json:"images,omitempty"`
	PrimaryImageURL string          `json:"primary_image_url"`
	Features        json.RawMessage `json:"features,omitempty"`
	Amenities       json.RawMessage `json:"amenities,omitempty"`
	Itinerary       json.RawMessage `json:"itinerary,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func FromListingView(view *queries.ListingView, resolver *storage.Resolver) *ListingResponse {
	return &ListingResponse{
		ID:              view.ID,
		Title:           view.Title,
		Description:     view.Description,
		Category:        view.Category,
		PriceCents:      view.PriceCents,
		Rating:          view.Rating,
		Location:        view.Location,
		Type:            view.Type,
		Availability:    view.Availability,
		Images:          view.Images,
		PrimaryImageURL: resolver.ImageURL(view.Images, view.ID.String()),
		Features:        view.Features,
		Amenities:       view.Amenities,
		Itinerary:       view.Itinerary,
		CreatedAt:       view.CreatedAt,
	}
}

func FromListingViews(views []*queries.ListingView, resolver *storage.Resolver) []*ListingResponse {
	out := make([]*ListingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromListingView(v, resolver))
	}
	return out
}
