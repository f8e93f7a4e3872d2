package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a sign-in attempt does not match the stored
// hash. Callers surface it as an invalid-credentials response without
// leaking which side was wrong.
var ErrMismatch = errors.New("password does not match")

// Hash bcrypt-hashes a plaintext password. Strength rules live in the user
// domain; by the time a password reaches here it has already been validated.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify compares a stored hash against a sign-in attempt.
func Verify(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
