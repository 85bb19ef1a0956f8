package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notes-server/internal/model"
	"github.com/dtroode/notes-server/internal/testutil"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth_Check(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return assert.AnError })

	tests := []struct {
		name       string
		checks     map[string]model.Pinger
		wantStatus int
		wantBody   healthResponse
	}{
		{
			name:       "all healthy",
			checks:     map[string]model.Pinger{"database": ok, "storage": ok},
			wantStatus: http.StatusOK,
			wantBody:   healthResponse{Status: "ok", Checks: map[string]string{"database": "ok", "storage": "ok"}},
		},
		{
			name:       "database down",
			checks:     map[string]model.Pinger{"database": down, "storage": ok},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   healthResponse{Status: "unavailable", Checks: map[string]string{"database": "unavailable", "storage": "ok"}},
		},
		{
			name:       "no dependencies",
			checks:     map[string]model.Pinger{},
			wantStatus: http.StatusOK,
			wantBody:   healthResponse{Status: "ok", Checks: map[string]string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHealth(tt.checks, testutil.MakeNoopLogger()).Check(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got healthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)
		})
	}
}
