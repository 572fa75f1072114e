package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "account/internal/delivery/context"
	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/domain/validate"
	"account/internal/errors"
	"account/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Field-error messages for profile updates. The map key identifies the
// rejected field on the wire.
const (
	msgInvalidEmail = "Please enter a valid email address."
	msgInvalidPhone = "Phone number must be 7-15 digits."
	msgInvalidDOB   = "Date of birth must be a valid date in the past, and you must be at least 13 years old."
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile fetches the account for the given id.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		srv.log(ctx).Error("Failed to fetch profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch profile")
	}

	return user, nil
}

// UpdateProfile validates every supplied field before writing anything.
// A nil pointer or an empty string means "leave unchanged".
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	fieldErrors := make(map[string]string)
	var update repository.UserUpdate

	if email := provided(input.Email); email != "" {
		if !validate.Email(email) {
			fieldErrors["email"] = msgInvalidEmail
		} else {
			normalized := strings.ToLower(email)
			update.Email = &normalized
		}
	}

	if phone := provided(input.Phone); phone != "" {
		if !validate.Phone(phone) {
			fieldErrors["phone"] = msgInvalidPhone
		} else {
			normalized := validate.NormalizePhone(phone)
			update.Phone = &normalized
		}
	}

	if dob := provided(input.DOB); dob != "" {
		if !validate.DOB(dob) {
			fieldErrors["dob"] = msgInvalidDOB
		} else {
			parsed, _ := validate.ParseDOB(dob)
			update.DOB = &parsed
		}
	}

	if len(fieldErrors) > 0 {
		return nil, domainerrors.NewValidationError(fieldErrors)
	}

	user, err := srv.userRepo.UpdateFields(ctx, userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return user, nil
}

func provided(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
