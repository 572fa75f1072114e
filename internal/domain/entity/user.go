// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the sole entity in the system, representing one account.
// Username is the login key and is immutable after creation; email, phone
// and date of birth are the user-editable profile fields.
type User struct {
	ID           uuid.UUID  // Unique identifier, assigned by the store at creation.
	Username     string     // Login key, 3-30 chars of [A-Za-z0-9_], unique across all users.
	PasswordHash string     // Opaque bcrypt hash. Never serialized, never exposed outside the credential core.
	Email        string     // Stored lowercase. Defaults to "" when omitted at registration.
	Phone        string     // Normalized E.164-like form, or "" when unset.
	DOB          *time.Time // Date of birth; nil when unset.
	CreatedAt    time.Time  // Timestamp of account creation, maintained by the store.
	UpdatedAt    time.Time  // Refreshed by the store on any mutation.
}
