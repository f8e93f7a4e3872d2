package listing

import (
	"encoding/json"
	"time"
)

// Availability mirrors the structured availability column: a flat list of
// already-booked dates. Unknown keys in the column are ignored.
type Availability struct {
	BookedDates []string `json:"booked_dates,omitempty"`
}

func ParseAvailability(raw []byte) Availability {
	var a Availability
	if len(raw) == 0 {
		return a
	}
	// Malformed availability data renders as fully available rather than
	// failing the whole listing.
	_ = json.Unmarshal(raw, &a)
	return a
}

// BookedOn reports whether the given day is already booked. Matching is by
// exact calendar date; times of day are ignored.
func (a Availability) BookedOn(day time.Time) bool {
	key := day.Format("2006-01-02")
	for _, d := range a.BookedDates {
		if d == key {
			return true
		}
		if t, err := time.Parse(time.RFC3339, d); err == nil && t.Format("2006-01-02") == key {
			return true
		}
	}
	return false
}

// BookedDays returns the parseable booked dates, normalized to midnight UTC.
// Unparseable entries are skipped.
func (a Availability) BookedDays() []time.Time {
	days := make([]time.Time, 0, len(a.BookedDates))
	for _, d := range a.BookedDates {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			t, err = time.Parse(time.RFC3339, d)
			if err != nil {
				continue
			}
		}
		days = append(days, time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	}
	return days
}
