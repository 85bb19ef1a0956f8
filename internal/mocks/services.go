package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/notes-server/internal/model"
)

// AuthService is a mock of the auth handler's service.
type AuthService struct {
	mock.Mock
}

func NewAuthService(t testingT) *AuthService {
	m := &AuthService{}
	register(&m.Mock, t)
	return m
}

func (_m *AuthService) Register(ctx context.Context, params model.RegisterParams) (model.AuthResult, error) {
	ret := _m.Called(ctx, params)
	return ret.Get(0).(model.AuthResult), ret.Error(1)
}

func (_m *AuthService) Authenticate(ctx context.Context, params model.LoginParams) (model.AuthResult, error) {
	ret := _m.Called(ctx, params)
	return ret.Get(0).(model.AuthResult), ret.Error(1)
}

func (_m *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (model.PublicUser, error) {
	ret := _m.Called(ctx, userID)
	return ret.Get(0).(model.PublicUser), ret.Error(1)
}

// NoteService is a mock of the note handler's service.
type NoteService struct {
	mock.Mock
}

func NewNoteService(t testingT) *NoteService {
	m := &NoteService{}
	register(&m.Mock, t)
	return m
}

func (_m *NoteService) CreateNote(ctx context.Context, params model.CreateNoteParams) (model.Note, error) {
	ret := _m.Called(ctx, params)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteService) ListNotes(ctx context.Context, userID uuid.UUID, view model.NoteView, search string) ([]model.Note, error) {
	ret := _m.Called(ctx, userID, view, search)
	var r0 []model.Note
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.Note)
	}
	return r0, ret.Error(1)
}

func (_m *NoteService) GetNote(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error) {
	ret := _m.Called(ctx, userID, noteID)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteService) UpdateNote(ctx context.Context, userID, noteID uuid.UUID, patch model.NotePatch) (model.Note, error) {
	ret := _m.Called(ctx, userID, noteID, patch)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteService) TrashNote(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error) {
	ret := _m.Called(ctx, userID, noteID)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteService) RestoreNote(ctx context.Context, userID, noteID uuid.UUID) (model.Note, error) {
	ret := _m.Called(ctx, userID, noteID)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteService) PurgeNote(ctx context.Context, userID, noteID uuid.UUID) error {
	ret := _m.Called(ctx, userID, noteID)
	return ret.Error(0)
}

// ExportService is a mock of the export handler's service.
type ExportService struct {
	mock.Mock
}

func NewExportService(t testingT) *ExportService {
	m := &ExportService{}
	register(&m.Mock, t)
	return m
}

func (_m *ExportService) ExportNotes(ctx context.Context, userID uuid.UUID) (model.ExportResult, error) {
	ret := _m.Called(ctx, userID)
	return ret.Get(0).(model.ExportResult), ret.Error(1)
}

func (_m *ExportService) OpenExport(ctx context.Context, userID uuid.UUID, key string) (io.ReadCloser, error) {
	ret := _m.Called(ctx, userID, key)
	var r0 io.ReadCloser
	if v := ret.Get(0); v != nil {
		r0 = v.(io.ReadCloser)
	}
	return r0, ret.Error(1)
}
