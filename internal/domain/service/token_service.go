package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the identity assertions embedded in a session token.
type Claims struct {
	UserID   uuid.UUID
	Username string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// Tokens are self-contained and stateless; expiry is the only path out of validity.
type TokenService interface {
	// Issue produces a signed, time-bound token embedding the subject id and username.
	Issue(userID uuid.UUID, username string) (string, error)

	// Verify checks signature integrity and expiry. It fails with
	// domainerrors.ErrTokenMissing, ErrTokenInvalid or ErrTokenExpired.
	Verify(tokenString string) (*Claims, error)
}
