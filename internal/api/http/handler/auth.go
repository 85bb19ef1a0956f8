package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.AuthResult, error)
	Authenticate(ctx context.Context, params model.LoginParams) (model.AuthResult, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (model.PublicUser, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type userResponse struct {
	User model.PublicUser `json:"user"`
}

// Signup registers a user and responds with a session.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var params model.RegisterParams
	if err := decodeJSON(w, r, &params); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	h.logger.Debug("Auth handler: processing signup request",
		"email", params.Email)

	result, err := h.authService.Register(r.Context(), params)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: signup completed",
		"user_id", result.User.ID)

	writeJSON(w, http.StatusCreated, result)
}

// Login checks credentials and responds with a session.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var params model.LoginParams
	if err := decodeJSON(w, r, &params); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	result, err := h.authService.Authenticate(r.Context(), params)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Me returns the authenticated user.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apiErrors.NewErrMissingAuthorizationToken())
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{User: user})
}
