// Command seed creates the demo account used for local development.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"account/config"
	"account/internal/domain/entity"
	"account/internal/domain/repository"
	"account/internal/domain/service"
	"account/internal/errors"
	"account/internal/infra/auth"
	logs "account/internal/infra/log"
	"account/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

const (
	seedUsername = "alice"
	seedPassword = "password123"
	seedEmail    = "alice@example.com"
	seedPhone    = "1234567890"
)

var seedDOB = time.Date(1990, time.May, 20, 0, 0, 0, 0, time.UTC)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}

	if cfg.Postgres == nil {
		logger.Error("Seeding requires a PostgreSQL configuration")
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}
	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
	}()

	repo := postgres.NewUserRepository(db)
	hasher := auth.NewBcryptHasher(cfg)

	if err := seedUser(context.Background(), repo, hasher, logger); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// seedUser creates the demo account unless it already exists. Losing the
// create race to a concurrent seeder counts as success.
func seedUser(ctx context.Context, repo repository.UserRepository, hasher service.PasswordHasher, logger *slog.Logger) error {
	_, err := repo.FindByUsername(ctx, seedUsername)
	if err == nil {
		logger.Info("Seed user already exists", slog.String("username", seedUsername))

		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check for existing seed user")
	}

	hash, err := hasher.Hash(seedPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash seed password")
	}

	dob := seedDOB
	user := &entity.User{
		Username:     seedUsername,
		PasswordHash: hash,
		Email:        seedEmail,
		Phone:        seedPhone,
		DOB:          &dob,
	}

	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			logger.Info("Seed user already exists", slog.String("username", seedUsername))

			return nil
		}

		return errors.Wrap(err, "failed to create seed user")
	}

	logger.Info("Created seed user", slog.String("username", seedUsername))

	return nil
}
