//go:build unit

package realtime_test

import (
	"context"
	"testing"
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/realtime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, sub realtime.Subscription) realtime.Change {
	t.Helper()
	select {
	case change, ok := <-sub.Events():
		require.True(t, ok, "subscription closed unexpectedly")
		return change
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a change event")
		return realtime.Change{}
	}
}

func TestMemoryFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers changes to subscribers of the same table", func(t *testing.T) {
		feed := realtime.NewMemoryFeed()
		sub, err := feed.Subscribe(ctx, realtime.TableBookings)
		require.NoError(t, err)
		defer sub.Close()

		userID := uuid.New()
		published := realtime.Change{
			Table:  realtime.TableBookings,
			Op:     realtime.OpInsert,
			RowID:  uuid.New(),
			UserID: &userID,
			At:     time.Now(),
		}
		require.NoError(t, feed.Publish(ctx, published))

		got := receive(t, sub)
		assert.Equal(t, published.RowID, got.RowID)
		assert.Equal(t, realtime.OpInsert, got.Op)
		assert.True(t, got.MatchesUser(userID))
	})

	t.Run("tables are isolated", func(t *testing.T) {
		feed := realtime.NewMemoryFeed()
		bookings, err := feed.Subscribe(ctx, realtime.TableBookings)
		require.NoError(t, err)
		defer bookings.Close()
		listings, err := feed.Subscribe(ctx, realtime.TableListings)
		require.NoError(t, err)
		defer listings.Close()

		require.NoError(t, feed.Publish(ctx, realtime.Change{
			Table: realtime.TableListings,
			Op:    realtime.OpUpdate,
			RowID: uuid.New(),
		}))

		got := receive(t, listings)
		assert.Equal(t, realtime.TableListings, got.Table)

		select {
		case change := <-bookings.Events():
			t.Fatalf("bookings subscriber received %v", change)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("close stops delivery and ends the stream", func(t *testing.T) {
		feed := realtime.NewMemoryFeed()
		sub, err := feed.Subscribe(ctx, realtime.TableProfiles)
		require.NoError(t, err)

		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close()) // idempotent

		require.NoError(t, feed.Publish(ctx, realtime.Change{
			Table: realtime.TableProfiles,
			Op:    realtime.OpUpdate,
			RowID: uuid.New(),
		}))

		_, ok := <-sub.Events()
		assert.False(t, ok)
	})

	t.Run("a slow subscriber never blocks the publisher", func(t *testing.T) {
		feed := realtime.NewMemoryFeed()
		sub, err := feed.Subscribe(ctx, realtime.TableListings)
		require.NoError(t, err)
		defer sub.Close()

		// Nobody drains; publishing past the buffer must still return.
		for i := 0; i < 64; i++ {
			require.NoError(t, feed.Publish(ctx, realtime.Change{
				Table: realtime.TableListings,
				Op:    realtime.OpInsert,
				RowID: uuid.New(),
			}))
		}
	})
}

func TestChangeMatchers(t *testing.T) {
	rowID := uuid.New()
	userID := uuid.New()

	owned := realtime.Change{Table: realtime.TableBookings, RowID: rowID, UserID: &userID}
	assert.True(t, owned.MatchesRow(rowID))
	assert.False(t, owned.MatchesRow(uuid.New()))
	assert.True(t, owned.MatchesUser(userID))
	assert.False(t, owned.MatchesUser(uuid.New()))

	unowned := realtime.Change{Table: realtime.TableListings, RowID: rowID}
	assert.False(t, unowned.MatchesUser(userID))
}
