// Package memory provides an in-memory user repository.
// It mirrors the behavior of the PostgreSQL implementation, including
// atomic username uniqueness, and backs the service when no database
// is configured as well as the test suites.
package memory

import (
	"context"
	"sync"
	"time"

	"account/internal/domain/entity"
	"account/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*entity.User
	byUsername map[string]uuid.UUID
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byID:       make(map[uuid.UUID]*entity.User),
		byUsername: make(map[string]uuid.UUID),
	}
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(r.byID[id]), nil
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Uniqueness is decided here, under the lock, regardless of any
	// earlier existence check by the caller.
	if _, exists := r.byUsername[user.Username]; exists {
		return repository.ErrDuplicateUsername
	}

	now := time.Now()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := cloneUser(user)
	r.byID[stored.ID] = stored
	r.byUsername[stored.Username] = stored.ID

	return nil
}

func (r *userRepository) UpdateFields(_ context.Context, id uuid.UUID, update repository.UserUpdate) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.DOB != nil {
		dob := *update.DOB
		user.DOB = &dob
	}
	user.UpdatedAt = time.Now()

	return cloneUser(user), nil
}

func cloneUser(user *entity.User) *entity.User {
	cloned := *user
	if user.DOB != nil {
		dob := *user.DOB
		cloned.DOB = &dob
	}

	return &cloned
}
