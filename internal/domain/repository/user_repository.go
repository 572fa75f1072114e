// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"account/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when an insert loses to a concurrent
	// insert of the same username. The store enforces uniqueness atomically;
	// any pre-insert existence check is only a fast-path optimization.
	ErrDuplicateUsername = errors.New("duplicate username")
)

// UserUpdate describes a partial update of the mutable profile fields.
// A nil field is left untouched.
type UserUpdate struct {
	Email *string
	Phone *string
	DOB   *time.Time
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves a single user by the login key (case-sensitive exact match).
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new user and fills in the assigned ID and timestamps.
	// Returns ErrDuplicateUsername when the unique-username constraint is violated.
	Create(ctx context.Context, user *entity.User) error

	// UpdateFields applies the supplied fields to the stored user, refreshes
	// UpdatedAt, and returns the post-update entity. Returns ErrUserNotFound
	// when the id no longer resolves.
	UpdateFields(ctx context.Context, id uuid.UUID, update UserUpdate) (*entity.User, error)
}
