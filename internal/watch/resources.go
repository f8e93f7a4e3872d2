package watch

import (
	"context"

	"github.com/google/uuid"

	"github.com/Johnmalala/ziarazetupromaxx/internal/realtime"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
)

// Resources builds watchers over the query layer, one constructor per
// conceptual resource. A nil feed yields fetch-only watchers with no
// change stream, which is what tests and one-shot callers want.
type Resources struct {
	listings queries.ListingQueries
	bookings queries.BookingQueries
	profiles queries.ProfileQueries
	requests queries.CustomRequestQueries
	feed     realtime.Feed
}

func NewResources(
	listings queries.ListingQueries,
	bookings queries.BookingQueries,
	profiles queries.ProfileQueries,
	requests queries.CustomRequestQueries,
	feed realtime.Feed,
) *Resources {
	return &Resources{
		listings: listings,
		bookings: bookings,
		profiles: profiles,
		requests: requests,
		feed:     feed,
	}
}

// Listings watches the published listings matching the filter. Any change
// to the listings table triggers a reload since category and status edits
// can move rows in or out of the filtered set.
func (r *Resources) Listings(ctx context.Context, filter queries.ListingFilter) (*Watcher[[]*queries.ListingView], error) {
	w := Start(ctx, func(ctx context.Context) ([]*queries.ListingView, error) {
		return r.listings.List(ctx, filter)
	}, Options{})
	return attach(ctx, w, r.feed, realtime.TableListings, nil)
}

// Listing watches a single listing by id.
func (r *Resources) Listing(ctx context.Context, id uuid.UUID) (*Watcher[*queries.ListingView], error) {
	w := Start(ctx, func(ctx context.Context) (*queries.ListingView, error) {
		return r.listings.GetByID(ctx, id)
	}, Options{ClearOnError: true})
	return attach(ctx, w, r.feed, realtime.TableListings, func(c realtime.Change) bool {
		return c.MatchesRow(id)
	})
}

// Bookings watches the given user's bookings. With no authenticated user
// the watcher settles on an empty result and never opens a stream.
func (r *Resources) Bookings(ctx context.Context, userID uuid.UUID) (*Watcher[[]*queries.BookingView], error) {
	w := Start(ctx, func(ctx context.Context) ([]*queries.BookingView, error) {
		if userID == uuid.Nil {
			return []*queries.BookingView{}, nil
		}
		return r.bookings.ListByUser(ctx, userID)
	}, Options{})
	if userID == uuid.Nil {
		return w, nil
	}
	return attach(ctx, w, r.feed, realtime.TableBookings, func(c realtime.Change) bool {
		return c.MatchesUser(userID)
	})
}

// Profile watches the given user's profile row.
func (r *Resources) Profile(ctx context.Context, userID uuid.UUID) (*Watcher[*queries.ProfileView], error) {
	w := Start(ctx, func(ctx context.Context) (*queries.ProfileView, error) {
		if userID == uuid.Nil {
			return nil, nil
		}
		return r.profiles.GetByID(ctx, userID)
	}, Options{ClearOnError: true})
	if userID == uuid.Nil {
		return w, nil
	}
	return attach(ctx, w, r.feed, realtime.TableProfiles, func(c realtime.Change) bool {
		return c.MatchesRow(userID)
	})
}

// CustomRequests watches the given user's custom trip requests.
func (r *Resources) CustomRequests(ctx context.Context, userID uuid.UUID) (*Watcher[[]*queries.CustomRequestView], error) {
	w := Start(ctx, func(ctx context.Context) ([]*queries.CustomRequestView, error) {
		if userID == uuid.Nil {
			return []*queries.CustomRequestView{}, nil
		}
		return r.requests.ListByUser(ctx, userID)
	}, Options{})
	if userID == uuid.Nil {
		return w, nil
	}
	return attach(ctx, w, r.feed, realtime.TableCustomRequests, func(c realtime.Change) bool {
		return c.MatchesUser(userID)
	})
}

// attach wires the change stream, or leaves the watcher fetch-only when no
// feed is configured.
func attach[T any](ctx context.Context, w *Watcher[T], feed realtime.Feed, table string, match func(realtime.Change) bool) (*Watcher[T], error) {
	if feed == nil {
		return w, nil
	}
	if err := w.Observe(ctx, feed, table, match); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}
