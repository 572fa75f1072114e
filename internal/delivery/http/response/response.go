// Package response defines the wire shapes of the HTTP API. The shapes are a
// compatibility contract with existing clients and must not change.
package response

import (
	"time"

	"account/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const dobLayout = "2006-01-02"

// RegisteredUser is the account view returned by registration.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthenticatedUser is the account view returned by login. It carries more
// fields than the registration view; the asymmetry is part of the contract.
type AuthenticatedUser struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	DOB      *string `json:"dob"`
}

// Profile is the full account view minus the credential hash.
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	DOB       *string   `json:"dob"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthPayload is the body of successful register and login responses.
type AuthPayload struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// NewRegisteredUser maps an entity to the registration view.
func NewRegisteredUser(user *entity.User) RegisteredUser {
	return RegisteredUser{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}
}

// NewAuthenticatedUser maps an entity to the login view.
func NewAuthenticatedUser(user *entity.User) AuthenticatedUser {
	return AuthenticatedUser{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		DOB:      formatDOB(user.DOB),
	}
}

// NewProfile maps an entity to the full profile view.
func NewProfile(user *entity.User) Profile {
	return Profile{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Phone:     user.Phone,
		DOB:       formatDOB(user.DOB),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Auth writes a token-bearing success response.
func Auth(c echo.Context, statusCode int, token string, user any) error {
	return c.JSON(statusCode, AuthPayload{Token: token, User: user})
}

// JSON writes an arbitrary success payload.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Error writes the single-message error shape.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Validation writes the field-keyed validation failure shape.
func Validation(c echo.Context, statusCode int, fieldErrors map[string]string, message string) error {
	return c.JSON(statusCode, map[string]any{
		"fieldErrors": fieldErrors,
		"message":     message,
	})
}

func formatDOB(dob *time.Time) *string {
	if dob == nil {
		return nil
	}

	formatted := dob.Format(dobLayout)

	return &formatted
}
