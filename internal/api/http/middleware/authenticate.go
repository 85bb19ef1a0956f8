package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	VerifyToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects user ID into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid bearer token with 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r.Header.Get("Authorization"))

		userID, err := m.tokenService.VerifyToken(r.Context(), tokenString)
		if err == nil && userID == uuid.Nil {
			err = apiErrors.NewErrInvalidAuthorizationToken()
		}
		if err != nil {
			apiErr, ok := apiErrors.As(err)
			if !ok {
				apiErr = apiErrors.NewErrInvalidAuthorizationToken()
			}
			m.logger.Debug("Authenticate middleware: request rejected",
				"path", r.URL.Path,
				"reason", apiErr.Message)
			writeMessage(w, http.StatusUnauthorized, apiErr.Message)
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}
