package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notes-server/internal/model"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u := model.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com", PasswordHash: []byte("h"), CreatedAt: time.Now()}
	saved, err := repo.Create(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, u.ID, saved.ID)

	byEmail, err := repo.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", byID.Name)

	require.NoError(t, repo.Ping(ctx))
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.Create(ctx, model.User{ID: uuid.New(), Email: "ann@x.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.User{ID: uuid.New(), Email: "ann@x.com"})
	require.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.GetByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)
}
