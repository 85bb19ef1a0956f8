package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

// TokenService issues session tokens and resolves them back to user IDs.
// Tokens are stateless: nothing is persisted and logout is client-side.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(_ context.Context, userID uuid.UUID) (string, error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}
	return access, nil
}

// VerifyToken returns the user ID a token was issued for. Missing, malformed,
// forged and expired tokens all yield an unauthenticated API error.
func (s *TokenService) VerifyToken(_ context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, apiErrors.NewErrMissingAuthorizationToken()
	}

	userID, err := s.manager.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Token service: rejected token", "error", err.Error())
		return uuid.Nil, apiErrors.NewErrInvalidAuthorizationToken()
	}
	if userID == uuid.Nil {
		return uuid.Nil, apiErrors.NewErrInvalidAuthorizationToken()
	}

	return userID, nil
}
