//go:build unit

package volunteer_test

import (
	"testing"
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/volunteer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication(t *testing.T) {
	opportunityID := uuid.New()
	userID := uuid.New()
	appliedAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := volunteer.NewApplication(
			opportunityID, userID,
			"  Test Volunteer ", "volunteer@example.com", " First aid ", "Community health work", "Jan to Mar",
			appliedAt,
		)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, opportunityID, actual.OpportunityID())
		assert.Equal(t, "Test Volunteer", actual.Name())
		assert.Equal(t, "First aid", actual.Skills())
		assert.Equal(t, appliedAt, actual.CreatedAt())
	})

	t.Run("optional fields may be blank", func(t *testing.T) {
		actual, err := volunteer.NewApplication(
			opportunityID, userID,
			"Test Volunteer", "volunteer@example.com", "", "Community health work", "",
			appliedAt,
		)
		require.NoError(t, err)
		assert.Empty(t, actual.Skills())
		assert.Empty(t, actual.Availability())
	})

	t.Run("input validation", func(t *testing.T) {
		cases := []struct {
			name       string
			applicant  string
			email      string
			motivation string
			errIs      error
		}{
			{name: "blank name", applicant: "  ", email: "volunteer@example.com", motivation: "helping", errIs: volunteer.ErrMissingName},
			{name: "blank email", applicant: "Test Volunteer", email: "", motivation: "helping", errIs: volunteer.ErrMissingEmail},
			{name: "blank motivation", applicant: "Test Volunteer", email: "volunteer@example.com", motivation: " ", errIs: volunteer.ErrMissingMotivation},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := volunteer.NewApplication(opportunityID, userID, tc.applicant, tc.email, "", tc.motivation, "", appliedAt)
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
