package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyPassword rejects empty input before it reaches bcrypt.
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrMismatch means the password does not verify against its hash.
	ErrMismatch = errors.New("password does not match")
)

// HashPassword bcrypt-hashes a raw password at the default cost.
func HashPassword(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword verifies raw against a stored bcrypt hash. A mismatch returns
// ErrMismatch; any other failure (e.g. a malformed hash) passes through.
func ComparePassword(hash, raw string) error {
	if hash == "" || raw == "" {
		return ErrMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
