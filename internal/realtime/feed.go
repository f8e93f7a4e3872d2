// Package realtime is the change-notification feed: every successful write
// publishes a change event for its table, and watchers subscribe per table
// to trigger refetches. Events carry identity, not data; a notification
// means "reload", never "apply this delta".
package realtime

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// Change identifies a mutated row. UserID is set for user-scoped tables so
// subscribers can filter to their own rows without another round trip.
type Change struct {
	Table  string     `json:"table"`
	Op     Op         `json:"op"`
	RowID  uuid.UUID  `json:"row_id"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
	At     time.Time  `json:"at"`
}

// MatchesRow reports whether the change concerns the given row.
func (c Change) MatchesRow(id uuid.UUID) bool {
	return c.RowID == id
}

// MatchesUser reports whether the change concerns rows owned by the given
// user. Changes without an owner match nothing here.
func (c Change) MatchesUser(id uuid.UUID) bool {
	return c.UserID != nil && *c.UserID == id
}

type Subscription interface {
	// Events yields changes until Close. The channel is closed on teardown.
	Events() <-chan Change
	Close() error
}

type Feed interface {
	Publish(ctx context.Context, change Change) error
	// Subscribe opens one stream of changes for a table. Callers must Close
	// the subscription before opening a replacement for new parameters,
	// otherwise they receive duplicate deliveries.
	Subscribe(ctx context.Context, table string) (Subscription, error)
}

// Table names, shared by publishers and subscribers.
const (
	TableListings       = "listings"
	TableBookings       = "bookings"
	TableProfiles       = "profiles"
	TableCustomRequests = "custom_requests"
	TableApplications   = "volunteer_applications"
)
