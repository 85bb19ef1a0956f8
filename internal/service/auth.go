package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
	now          func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: NewTokenService(tokenManager, logger),
		logger:       logger,
		now:          time.Now,
	}
}

// Register creates a user and returns a session for it.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.AuthResult, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Email = normalizeEmail(params.Email)

	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	if err := validateStruct(params); err != nil {
		return model.AuthResult{}, err
	}

	_, err := a.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return model.AuthResult{}, apiErrors.NewErrEmailIsTaken(params.Email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now().UTC()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.AuthResult{}, apiErrors.NewErrEmailIsTaken(params.Email)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	result, err := a.session(ctx, user)
	if err != nil {
		return model.AuthResult{}, err
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"user_id", user.ID)

	return result, nil
}

// Authenticate checks credentials and returns a session. Unknown emails and
// wrong passwords produce the same error.
func (a *Auth) Authenticate(ctx context.Context, params model.LoginParams) (model.AuthResult, error) {
	params.Email = normalizeEmail(params.Email)

	if err := validateStruct(params); err != nil {
		return model.AuthResult{}, err
	}

	user, err := a.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		// Keep the cost of a miss equal to a wrong password.
		_ = a.hasher.Compare(a.dummyPasswordHash(), params.Password)
		a.logger.Info("Auth service: login for unknown email")
		return model.AuthResult{}, apiErrors.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, params.Password); err != nil {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return model.AuthResult{}, apiErrors.NewErrInvalidCredentials()
	}

	result, err := a.session(ctx, user)
	if err != nil {
		return model.AuthResult{}, err
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return result, nil
}

// VerifyToken resolves a session token to the user ID it was issued for.
func (a *Auth) VerifyToken(ctx context.Context, token string) (uuid.UUID, error) {
	return a.tokenService.VerifyToken(ctx, token)
}

// CurrentUser returns the public projection of the authenticated user.
func (a *Auth) CurrentUser(ctx context.Context, userID uuid.UUID) (model.PublicUser, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.PublicUser{}, apiErrors.NewErrInvalidAuthorizationToken()
	}
	if err != nil {
		return model.PublicUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user.Public(), nil
}

func (a *Auth) session(ctx context.Context, user model.User) (model.AuthResult, error) {
	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return model.AuthResult{Token: token, User: user.Public()}, nil
}

func (a *Auth) dummyPasswordHash() []byte {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(uuid.NewString())
		if err != nil {
			a.logger.Warn("Auth service: failed to prepare dummy hash", "error", err.Error())
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}
