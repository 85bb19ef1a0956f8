package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpcontext "github.com/dtroode/notes-server/internal/api/http/context"
)

// newRequest builds a request as the authenticate middleware would pass it
// on, with chi URL params populated.
func newRequest(method, target, body string, userID uuid.UUID, params map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	ctx := req.Context()
	if userID != uuid.Nil {
		ctx = httpcontext.NewManager().SetUserIDToContext(ctx, userID)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}
