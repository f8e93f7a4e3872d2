//go:build unit

package user_test

import (
	"testing"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		creds, err := user.NewCredentials("  test@example.com ", "password123")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", creds.Email().Value())
		assert.Equal(t, "password123", creds.Password().Value())
	})

	t.Run("input validation", func(t *testing.T) {
		cases := []struct {
			name     string
			email    string
			password string
			errIs    error
		}{
			{name: "invalid email", email: "not-an-email", password: "password123", errIs: user.ErrInvalidEmail},
			{name: "empty email", email: "", password: "password123", errIs: user.ErrInvalidEmail},
			{name: "short password", email: "test@example.com", password: "1234567", errIs: user.ErrPasswordTooWeak},
			{name: "minimum length password", email: "test@example.com", password: "12345678"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := user.NewCredentials(tc.email, tc.password)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})
}

func TestNewFullName(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		name, err := user.NewFullName("  Test Traveler  ")
		require.NoError(t, err)
		assert.Equal(t, "Test Traveler", name.Value())
	})

	t.Run("rejects blank names", func(t *testing.T) {
		_, err := user.NewFullName("   ")
		assert.ErrorIs(t, err, user.ErrEmptyFullName)
	})
}

func TestProfileRename(t *testing.T) {
	email, err := user.NewEmail("test@example.com")
	require.NoError(t, err)
	original, err := user.NewFullName("Before")
	require.NoError(t, err)

	profile := user.NewProfile(uuid.New(), original, email, user.RoleUser)

	renamed, err := user.NewFullName("After")
	require.NoError(t, err)
	profile.Rename(renamed)
	assert.Equal(t, "After", profile.FullName().Value())
}
