package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
	"github.com/dtroode/notes-server/internal/mocks"
	"github.com/dtroode/notes-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	validID := uuid.New()

	tests := []struct {
		name         string
		authHeader   string
		wantToken    string
		svcUserID    uuid.UUID
		svcErr       error
		wantStatus   int
		wantMessage  string
		expectSetCtx bool
	}{
		{
			name:        "missing authorization header",
			authHeader:  "",
			wantToken:   "",
			svcErr:      apiErrors.NewErrMissingAuthorizationToken(),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "missing authorization token",
		},
		{
			name:        "wrong scheme",
			authHeader:  "Basic dXNlcjpwdw==",
			wantToken:   "",
			svcErr:      apiErrors.NewErrMissingAuthorizationToken(),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "missing authorization token",
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer invalid",
			wantToken:   "invalid",
			svcErr:      apiErrors.NewErrInvalidAuthorizationToken(),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid authorization token",
		},
		{
			name:        "non api error is hidden",
			authHeader:  "Bearer broken",
			wantToken:   "broken",
			svcErr:      assert.AnError,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid authorization token",
		},
		{
			name:        "nil user id from token",
			authHeader:  "Bearer token",
			wantToken:   "token",
			svcUserID:   uuid.Nil,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid authorization token",
		},
		{
			name:         "valid token",
			authHeader:   "bearer  token ",
			wantToken:    "token",
			svcUserID:    validID,
			wantStatus:   http.StatusNoContent,
			expectSetCtx: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewTokenService(t)
			svc.On("VerifyToken", mock.Anything, tt.wantToken).Return(tt.svcUserID, tt.svcErr)

			cm := mocks.NewContextManager(t)
			if tt.expectSetCtx {
				cm.On("SetUserIDToContext", mock.Anything, tt.svcUserID).
					Return(func(ctx context.Context, _ uuid.UUID) context.Context { return ctx })
			}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			NewAuthenticate(svc, cm, testutil.MakeNoopLogger()).Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.expectSetCtx, called)
			if tt.wantMessage != "" {
				assert.JSONEq(t, `{"message":"`+tt.wantMessage+`"}`, rec.Body.String())
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("BEARER abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken("Token abc"))
	assert.Equal(t, "", bearerToken(""))
}
