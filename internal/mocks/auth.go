package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func NewTokenManager(t testingT) *TokenManager {
	m := &TokenManager{}
	register(&m.Mock, t)
	return m
}

func (_m *TokenManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	ret := _m.Called(userID)
	return ret.String(0), ret.Error(1)
}

func (_m *TokenManager) ParseAccessToken(token string) (uuid.UUID, error) {
	ret := _m.Called(token)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

// PasswordHasher is a mock of model.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func NewPasswordHasher(t testingT) *PasswordHasher {
	m := &PasswordHasher{}
	register(&m.Mock, t)
	return m
}

func (_m *PasswordHasher) Hash(password string) ([]byte, error) {
	ret := _m.Called(password)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

func (_m *PasswordHasher) Compare(hash []byte, password string) error {
	ret := _m.Called(hash, password)
	return ret.Error(0)
}

// TokenService is a mock of the middleware token verifier.
type TokenService struct {
	mock.Mock
}

func NewTokenService(t testingT) *TokenService {
	m := &TokenService{}
	register(&m.Mock, t)
	return m
}

func (_m *TokenService) VerifyToken(ctx context.Context, token string) (uuid.UUID, error) {
	ret := _m.Called(ctx, token)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

// ContextManager is a mock of model.ContextManager.
type ContextManager struct {
	mock.Mock
}

func NewContextManager(t testingT) *ContextManager {
	m := &ContextManager{}
	register(&m.Mock, t)
	return m
}

func (_m *ContextManager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	ret := _m.Called(ctx, userID)
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) context.Context); ok {
		return rf(ctx, userID)
	}
	return ret.Get(0).(context.Context)
}

func (_m *ContextManager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	ret := _m.Called(ctx)
	return ret.Get(0).(uuid.UUID), ret.Bool(1)
}
