// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"account/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Email is optional at registration time.
type RegisterInput struct {
	Username string
	Password string
	Email    string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns a freshly issued session token along with the account
// it was issued for. The entity carries the password hash; the delivery
// layer decides which fields reach the wire.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for credential-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register validates the input, creates the account and issues a session
	// token. Username uniqueness is ultimately decided by the store.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies the credentials and issues a session token. It reveals
	// nothing about whether the username exists.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
}
