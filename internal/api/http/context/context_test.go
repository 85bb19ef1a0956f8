package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestManager_SetAndGetUserID(t *testing.T) {
	m := NewManager()
	uid := uuid.New()
	ctx := m.SetUserIDToContext(stdctx.Background(), uid)

	got, ok := m.GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uid, got)
}

func TestManager_GetUserID_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetUserIDFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetUserID_NilUUID(t *testing.T) {
	m := NewManager()
	ctx := m.SetUserIDToContext(stdctx.Background(), uuid.Nil)

	_, ok := m.GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_OverwritesUserID(t *testing.T) {
	m := NewManager()
	first, second := uuid.New(), uuid.New()

	ctx := m.SetUserIDToContext(stdctx.Background(), first)
	ctx = m.SetUserIDToContext(ctx, second)

	got, ok := m.GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, second, got)
}
