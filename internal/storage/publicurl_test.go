//go:build unit

package storage_test

import (
	"log/slog"
	"testing"

	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/config"
	"github.com/Johnmalala/ziarazetupromaxx/internal/storage"

	"github.com/stretchr/testify/assert"
)

func newResolver(baseURL string) *storage.Resolver {
	return storage.NewResolver(config.StorageConfig{
		PublicBaseURL: baseURL,
		ListingBucket: "listings_images",
	}, slog.Default())
}

func TestImageURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		images   []string
		expected string
	}{
		{
			name:     "empty list falls back to placeholder",
			baseURL:  "https://cdn.example.com/object/public",
			images:   nil,
			expected: storage.PlaceholderURL,
		},
		{
			name:     "blank first entry falls back to placeholder",
			baseURL:  "https://cdn.example.com/object/public",
			images:   []string{""},
			expected: storage.PlaceholderURL,
		},
		{
			name:     "absolute URL passes through",
			baseURL:  "https://cdn.example.com/object/public",
			images:   []string{"https://images.example.com/safari.jpg"},
			expected: "https://images.example.com/safari.jpg",
		},
		{
			name:     "bucket path is resolved against the public base",
			baseURL:  "https://cdn.example.com/object/public",
			images:   []string{"tours/serengeti.jpg"},
			expected: "https://cdn.example.com/object/public/listings_images/tours/serengeti.jpg",
		},
		{
			name:     "unresolvable path falls back to placeholder",
			baseURL:  "",
			images:   []string{"tours/serengeti.jpg"},
			expected: storage.PlaceholderURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResolver(tt.baseURL)
			assert.Equal(t, tt.expected, r.ImageURL(tt.images, "listing-1"))
		})
	}
}
