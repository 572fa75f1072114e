// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"account/config"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/service"
	"account/internal/errors"
)

// defaultCost targets roughly 250ms per hash on reference hardware, making
// brute-force guessing costly.
const defaultCost = 12

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultCost
	if cfg != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost factor.
// Useful for tests, where the default work factor is too slow.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt handles salt generation; a failure here means the underlying
// entropy source or the cost parameter is broken.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash in constant time.
// A mismatch or a merely damaged hash yields (false, nil); a hash that is
// structurally impossible to parse yields ErrInvalidHashFormat.
func (h *bcryptHasher) Check(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	case isUnparseableHash(err):
		return false, domainerrors.ErrInvalidHashFormat.WrapMessage("failed to parse stored hash")
	default:
		return false, nil
	}
}

// isUnparseableHash reports whether bcrypt could not make structural sense of
// the stored hash at all.
func isUnparseableHash(err error) bool {
	if errors.Is(err, bcrypt.ErrHashTooShort) {
		return true
	}

	var prefixErr bcrypt.InvalidHashPrefixError
	if errors.As(err, &prefixErr) {
		return true
	}

	var versionErr bcrypt.HashVersionTooNewError

	return errors.As(err, &versionErr)
}
