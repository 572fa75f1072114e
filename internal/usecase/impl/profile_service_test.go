package impl

import (
	"context"
	"testing"
	"time"

	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo repository.UserRepository) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     "alice",
		PasswordHash: "hash",
		Email:        "alice@example.com",
		Phone:        "5551234567",
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestGetProfile(t *testing.T) {
	repo := newTestRepo()
	srv := newTestProfileService(t, repo)
	seeded := seedUser(t, repo)

	user, err := srv.GetProfile(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestGetProfileUnknownID(t *testing.T) {
	srv := newTestProfileService(t, newTestRepo())

	_, err := srv.GetProfile(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "User not found.", appErr.Message())
}

func TestUpdateProfileAllFields(t *testing.T) {
	repo := newTestRepo()
	srv := newTestProfileService(t, repo)
	seeded := seedUser(t, repo)

	updated, err := srv.UpdateProfile(context.Background(), seeded.ID, usecase.UpdateProfileInput{
		Email: strPtr("New@Example.COM"),
		Phone: strPtr("(555) 987-6543"),
		DOB:   strPtr("1990-06-15"),
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", updated.Email, "email should be normalized to lowercase")
	assert.Equal(t, "5559876543", updated.Phone, "phone should be stripped of formatting")
	require.NotNil(t, updated.DOB)
	assert.True(t, updated.DOB.Equal(time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)))
}

func TestUpdateProfileEmptyStringsLeaveFieldsUnchanged(t *testing.T) {
	repo := newTestRepo()
	srv := newTestProfileService(t, repo)
	seeded := seedUser(t, repo)

	updated, err := srv.UpdateProfile(context.Background(), seeded.ID, usecase.UpdateProfileInput{
		Email: strPtr(""),
		Phone: strPtr(""),
		DOB:   strPtr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, "5551234567", updated.Phone)
	assert.Nil(t, updated.DOB)
}

func TestUpdateProfileRejectsInvalidFieldsAtomically(t *testing.T) {
	repo := newTestRepo()
	srv := newTestProfileService(t, repo)
	seeded := seedUser(t, repo)

	_, err := srv.UpdateProfile(context.Background(), seeded.ID, usecase.UpdateProfileInput{
		Email: strPtr("not-an-email"),
		Phone: strPtr("123"),
		DOB:   strPtr("1990-06-15"),
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Please enter a valid email address.", validationErr.FieldErrors["email"])
	assert.Equal(t, "Phone number must be 7-15 digits.", validationErr.FieldErrors["phone"])
	assert.NotContains(t, validationErr.FieldErrors, "dob")

	// Nothing may have been persisted, valid DOB included.
	unchanged, err := srv.GetProfile(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", unchanged.Email)
	assert.Equal(t, "5551234567", unchanged.Phone)
	assert.Nil(t, unchanged.DOB)
}

func TestUpdateProfileInvalidDOB(t *testing.T) {
	repo := newTestRepo()
	srv := newTestProfileService(t, repo)
	seeded := seedUser(t, repo)

	for _, dob := range []string{"not-a-date", "2999-01-01", time.Now().AddDate(-10, 0, 0).Format("2006-01-02")} {
		_, err := srv.UpdateProfile(context.Background(), seeded.ID, usecase.UpdateProfileInput{DOB: strPtr(dob)})
		require.Error(t, err, "dob %q should be rejected", dob)

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t,
			"Date of birth must be a valid date in the past, and you must be at least 13 years old.",
			validationErr.FieldErrors["dob"])
	}
}

func TestUpdateProfileUnknownID(t *testing.T) {
	srv := newTestProfileService(t, newTestRepo())

	_, err := srv.UpdateProfile(context.Background(), uuid.New(), usecase.UpdateProfileInput{Email: strPtr("new@example.com")})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestUpdateProfileNoFieldsIsNoOp(t *testing.T) {
	repo := newTestRepo()
	srv := newTestProfileService(t, repo)
	seeded := seedUser(t, repo)

	updated, err := srv.UpdateProfile(context.Background(), seeded.ID, usecase.UpdateProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, seeded.Email, updated.Email)
	assert.Equal(t, seeded.Phone, updated.Phone)
}
