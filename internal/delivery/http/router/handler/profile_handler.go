package handler

import (
	"net/http"

	"account/internal/delivery/http/middleware"
	"account/internal/delivery/http/response"
	domainerrors "account/internal/domain/errors"
	"account/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

type updateProfileRequest struct {
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	DOB   *string `json:"dob"`
}

// GetMe returns the authenticated caller's profile.
func (h *ProfileHandler) GetMe(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewProfile(user))
}

// UpdateMe updates the authenticated caller's profile fields.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewInvalidInput("Invalid profile input.")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Email: req.Email,
		Phone: req.Phone,
		DOB:   req.DOB,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewProfile(user))
}

// callerID extracts the authenticated user id set by the auth middleware.
func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("no authenticated user on context")
	}

	return userID, nil
}
