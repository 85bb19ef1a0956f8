// Package memory provides process-local stores used when no database is
// configured and by tests. Contents are lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/notes-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]model.User
	byEmail map[string]uuid.UUID
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]model.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return model.User{}, model.ErrAlreadyExists
	}
	if _, taken := r.byID[user.ID]; taken {
		return model.User{}, model.ErrAlreadyExists
	}

	user.PasswordHash = append([]byte(nil), user.PasswordHash...)
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID
	return user, nil
}

// Ping always succeeds.
func (r *UserRepository) Ping(context.Context) error {
	return nil
}
