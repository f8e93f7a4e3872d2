// Package storage resolves public object URLs for listing images. The
// service never uploads; admin tooling writes objects out of band and rows
// reference them by path.
package storage

import (
	"log/slog"
	"strings"

	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/config"
)

// PlaceholderURL replaces any image that cannot be resolved. Resolution
// failures are a rendering concern, never a request failure.
const PlaceholderURL = "https://placehold.co/600x400.png?text=No+Image"

type Resolver struct {
	baseURL string
	bucket  string
	logger  *slog.Logger
}

func NewResolver(cfg config.StorageConfig, logger *slog.Logger) *Resolver {
	return &Resolver{
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		bucket:  cfg.ListingBucket,
		logger:  logger,
	}
}

// ImageURL returns the public URL for the first image in the list, or the
// placeholder when the list is empty or the path cannot be resolved.
// Absolute URLs pass through untouched.
func (r *Resolver) ImageURL(images []string, listingID string) string {
	if len(images) == 0 || images[0] == "" {
		return PlaceholderURL
	}

	path := images[0]
	if strings.HasPrefix(path, "http") {
		return path
	}

	url := r.PublicURL(path)
	if url == "" {
		r.logger.Error("could not resolve public image URL",
			"listing_id", listingID, "path", path, "bucket", r.bucket)
		return PlaceholderURL
	}
	return url
}

// PublicURL builds the public URL for a path in the listing bucket. An
// unconfigured base yields the empty string.
func (r *Resolver) PublicURL(path string) string {
	if r.baseURL == "" {
		return ""
	}
	return r.baseURL + "/" + r.bucket + "/" + strings.TrimLeft(path, "/")
}
