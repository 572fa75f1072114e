// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"account/config"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/service"
	"account/internal/errors"
)

const (
	// defaultTokenTTL is how long an issued token stays valid. Expiry is the
	// only path out of validity; there is no revocation.
	defaultTokenTTL = 4 * time.Hour

	// devSecret is the development fallback used when no secret is
	// configured. It matches what collaborating deployments expect, but it
	// is a known footgun outside development.
	devSecret = "dev_secret_change_me"
)

// jwtClaims is the wire shape of the token payload.
type jwtClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService. The signing secret is read
// from configuration once at construction; business logic never touches
// ambient environment state.
func NewJWTService(cfg *config.Config, logger *slog.Logger) service.TokenService {
	secret := cfg.Auth.Secret
	if secret == "" {
		secret = devSecret
		logger.Warn("No signing secret configured, falling back to the built-in development secret")
	}

	ttl := defaultTokenTTL
	if cfg.Auth.TokenTTL != 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue produces a signed HS256 token carrying the subject id, username,
// issued-at and expiry claims.
func (s *jwtService) Issue(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks signature integrity and expiry, returning the embedded
// identity claims. The failure taxonomy is kept distinct for diagnostics even
// though callers collapse it into one unauthenticated outcome.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	if tokenString == "" {
		return nil, domainerrors.ErrTokenMissing.WrapMessage("no token supplied")
	}

	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token expiry has passed")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token")
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token failed validation")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("invalid subject claim")
	}

	return &service.Claims{
		UserID:           userID,
		Username:         claims.Username,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
