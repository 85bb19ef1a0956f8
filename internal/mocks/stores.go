package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/notes-server/internal/model"
)

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func NewUserStore(t testingT) *UserStore {
	m := &UserStore{}
	register(&m.Mock, t)
	return m
}

func (_m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	ret := _m.Called(ctx, user)
	if rf, ok := ret.Get(0).(func(context.Context, model.User) model.User); ok {
		return rf(ctx, user), ret.Error(1)
	}
	return ret.Get(0).(model.User), ret.Error(1)
}

// NoteStore is a mock of model.NoteStore.
type NoteStore struct {
	mock.Mock
}

func NewNoteStore(t testingT) *NoteStore {
	m := &NoteStore{}
	register(&m.Mock, t)
	return m
}

func (_m *NoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	ret := _m.Called(ctx, note)
	if rf, ok := ret.Get(0).(func(context.Context, model.Note) model.Note); ok {
		return rf(ctx, note), ret.Error(1)
	}
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (model.Note, error) {
	ret := _m.Called(ctx, ownerID, id)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteStore) List(ctx context.Context, filter model.NoteFilter) ([]model.Note, error) {
	ret := _m.Called(ctx, filter)
	var r0 []model.Note
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.Note)
	}
	return r0, ret.Error(1)
}

func (_m *NoteStore) ListAll(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	ret := _m.Called(ctx, ownerID)
	var r0 []model.Note
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.Note)
	}
	return r0, ret.Error(1)
}

func (_m *NoteStore) Update(ctx context.Context, note model.Note) (model.Note, error) {
	ret := _m.Called(ctx, note)
	if rf, ok := ret.Get(0).(func(context.Context, model.Note) model.Note); ok {
		return rf(ctx, note), ret.Error(1)
	}
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	ret := _m.Called(ctx, ownerID, id)
	return ret.Error(0)
}

// Storage is a mock of model.Storage.
type Storage struct {
	mock.Mock
}

func NewStorage(t testingT) *Storage {
	m := &Storage{}
	register(&m.Mock, t)
	return m
}

func (_m *Storage) Upload(ctx context.Context, key string, reader io.Reader) error {
	ret := _m.Called(ctx, key, reader)
	return ret.Error(0)
}

func (_m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	ret := _m.Called(ctx, key)
	var r0 io.ReadCloser
	if v := ret.Get(0); v != nil {
		r0 = v.(io.ReadCloser)
	}
	return r0, ret.Error(1)
}

func (_m *Storage) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}

func (_m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}
