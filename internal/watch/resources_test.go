//go:build unit

package watch_test

import (
	"context"
	"testing"

	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
	"github.com/Johnmalala/ziarazetupromaxx/internal/watch"
	queriesmock "github.com/Johnmalala/ziarazetupromaxx/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type resourcesMocks struct {
	listings *queriesmock.MockListingQueries
	bookings *queriesmock.MockBookingQueries
	profiles *queriesmock.MockProfileQueries
	requests *queriesmock.MockCustomRequestQueries
}

func newResources(t *testing.T) (*watch.Resources, resourcesMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := resourcesMocks{
		listings: queriesmock.NewMockListingQueries(ctrl),
		bookings: queriesmock.NewMockBookingQueries(ctrl),
		profiles: queriesmock.NewMockProfileQueries(ctrl),
		requests: queriesmock.NewMockCustomRequestQueries(ctrl),
	}
	return watch.NewResources(m.listings, m.bookings, m.profiles, m.requests, nil), m
}

// An unauthenticated caller gets an empty snapshot without the store ever
// being queried. No expectations are registered, so any query call fails
// the test.
func TestResourcesNilIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("bookings settle empty", func(t *testing.T) {
		r, _ := newResources(t)

		w, err := r.Bookings(ctx, uuid.Nil)
		require.NoError(t, err)
		defer w.Close()

		snap := waitSettled(t, w)
		assert.Empty(t, snap.Err)
		assert.Empty(t, snap.Data)
	})

	t.Run("custom requests settle empty", func(t *testing.T) {
		r, _ := newResources(t)

		w, err := r.CustomRequests(ctx, uuid.Nil)
		require.NoError(t, err)
		defer w.Close()

		snap := waitSettled(t, w)
		assert.Empty(t, snap.Err)
		assert.Empty(t, snap.Data)
	})

	t.Run("profile settles nil", func(t *testing.T) {
		r, _ := newResources(t)

		w, err := r.Profile(ctx, uuid.Nil)
		require.NoError(t, err)
		defer w.Close()

		snap := waitSettled(t, w)
		assert.Empty(t, snap.Err)
		assert.Nil(t, snap.Data)
	})
}

func TestResourcesAuthenticatedFetch(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	r, m := newResources(t)
	m.bookings.EXPECT().ListByUser(gomock.Any(), userID).
		Return([]*queries.BookingView{{ID: uuid.New(), UserID: userID}}, nil)

	w, err := r.Bookings(ctx, userID)
	require.NoError(t, err)
	defer w.Close()

	snap := waitSettled(t, w)
	assert.Empty(t, snap.Err)
	require.Len(t, snap.Data, 1)
	assert.Equal(t, userID, snap.Data[0].UserID)
}
