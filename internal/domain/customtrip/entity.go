package customtrip

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingDestination = errors.New("destination is required")
	ErrMissingDetails     = errors.New("trip details are required")
	ErrNegativeBudget     = errors.New("budget cannot be negative")
)

// Request is a bespoke-trip inquiry. The user submits it once; its status is
// only ever advanced by the admin side, so the entity has no status
// transitions of its own.
type Request struct {
	id          uuid.UUID
	userID      uuid.UUID
	tripDetails string
	budgetCents *int64
	status      string
	createdAt   time.Time
}

// TripBrief is the structured form input that gets flattened into the
// trip_details text column.
type TripBrief struct {
	Destination string
	TravelDates string
	Travelers   int
	Details     string
}

func (b TripBrief) Render() string {
	return fmt.Sprintf(
		"Destination: %s\nTravel Dates: %s\nTravelers: %d\nDetails: %s",
		strings.TrimSpace(b.Destination),
		strings.TrimSpace(b.TravelDates),
		b.Travelers,
		strings.TrimSpace(b.Details),
	)
}

func NewRequest(userID uuid.UUID, brief TripBrief, budgetCents *int64, now time.Time) (*Request, error) {
	if strings.TrimSpace(brief.Destination) == "" {
		return nil, ErrMissingDestination
	}
	if strings.TrimSpace(brief.Details) == "" {
		return nil, ErrMissingDetails
	}
	if budgetCents != nil && *budgetCents < 0 {
		return nil, ErrNegativeBudget
	}

	return &Request{
		id:          uuid.New(),
		userID:      userID,
		tripDetails: brief.Render(),
		budgetCents: budgetCents,
		status:      "new",
		createdAt:   now,
	}, nil
}

func (r *Request) ID() uuid.UUID        { return r.id }
func (r *Request) UserID() uuid.UUID    { return r.userID }
func (r *Request) TripDetails() string  { return r.tripDetails }
func (r *Request) BudgetCents() *int64  { return r.budgetCents }
func (r *Request) Status() string       { return r.status }
func (r *Request) CreatedAt() time.Time { return r.createdAt }
