package usecase

import (
	"context"

	"account/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the mutable profile fields as raw strings,
// exactly as received. A nil field or an empty string leaves the stored
// value unchanged.
type UpdateProfileInput struct {
	Email *string
	Phone *string
	DOB   *string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile fetches the account for the given id.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile validates, normalizes and persists the supplied fields.
	// All fields are validated before anything is written; any failure
	// aborts the whole update with a field-keyed validation error.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)
}
