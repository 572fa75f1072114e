package impl

import (
	"io"
	"log/slog"
	"testing"

	"account/config"
	"account/internal/domain/repository"
	infraauth "account/internal/infra/auth"
	"account/internal/infra/persistence/memory"
	"account/internal/usecase"

	"golang.org/x/crypto/bcrypt"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuthService(t *testing.T, repo repository.UserRepository) usecase.AuthUsecase {
	t.Helper()

	logger := newTestLogger()
	cfg := &config.Config{}
	cfg.Auth.Secret = "test_secret"

	return NewAuthService(AuthServiceParams{
		UserRepo:     repo,
		Hasher:       infraauth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: infraauth.NewJWTService(cfg, logger),
		Logger:       logger,
	})
}

func newTestProfileService(t *testing.T, repo repository.UserRepository) usecase.ProfileUsecase {
	t.Helper()

	return NewProfileService(ProfileServiceParams{
		UserRepo: repo,
		Logger:   newTestLogger(),
	})
}

func newTestRepo() repository.UserRepository {
	return memory.NewUserRepository()
}

func strPtr(s string) *string {
	return &s
}
