//go:build unit

package builder

import (
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    string
	PriceCents  int64
	Location    string
	Type        string
	Images      []string
	Status      string
	CreatedAt   time.Time
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:          uuid.New(),
		Title:       "Serengeti Safari",
		Description: "Five days across the northern circuit",
		Category:    "tour",
		PriceCents:  250_000_00,
		Location:    "Serengeti, Tanzania",
		Type:        "safari",
		Images:      []string{"listings/serengeti.jpg"},
		Status:      "published",
		CreatedAt:   time.Now(),
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

func (l *ListingBuilder) BuildView() *queries.ListingView {
	price := l.PriceCents
	return &queries.ListingView{
		ID:          l.ID,
		Title:       l.Title,
		Description: &l.Description,
		Category:    l.Category,
		PriceCents:  &price,
		Location:    &l.Location,
		Type:        &l.Type,
		Images:      l.Images,
		Status:      l.Status,
		CreatedAt:   l.CreatedAt,
	}
}
