package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
	httpcontext "github.com/dtroode/notes-server/internal/api/http/context"
	"github.com/dtroode/notes-server/internal/mocks"
	"github.com/dtroode/notes-server/internal/model"
	"github.com/dtroode/notes-server/internal/testutil"
)

func TestExport_Create(t *testing.T) {
	userID := uuid.New()

	svc := mocks.NewExportService(t)
	svc.On("ExportNotes", mock.Anything, userID).Return(model.ExportResult{Key: "user-x/export-1.json", Count: 3}, nil)

	rec := httptest.NewRecorder()
	NewExport(svc, httpcontext.NewManager(), testutil.MakeNoopLogger()).
		Create(rec, newRequest(http.MethodPost, "/notes/export", "", userID, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"key":"user-x/export-1.json","count":3}`, rec.Body.String())
}

func TestExport_Download(t *testing.T) {
	userID := uuid.New()
	key := "user-" + userID.String() + "/export-1.json"

	t.Run("streams object", func(t *testing.T) {
		svc := mocks.NewExportService(t)
		svc.On("OpenExport", mock.Anything, userID, key).Return(io.NopCloser(strings.NewReader(`{"notes":[]}`)), nil)

		rec := httptest.NewRecorder()
		NewExport(svc, httpcontext.NewManager(), testutil.MakeNoopLogger()).
			Download(rec, newRequest(http.MethodGet, "/notes/export/"+key, "", userID, map[string]string{"*": key}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, `{"notes":[]}`, rec.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		svc := mocks.NewExportService(t)
		svc.On("OpenExport", mock.Anything, userID, key).Return(nil, apiErrors.NewErrExportNotFound())

		rec := httptest.NewRecorder()
		NewExport(svc, httpcontext.NewManager(), testutil.MakeNoopLogger()).
			Download(rec, newRequest(http.MethodGet, "/notes/export/"+key, "", userID, map[string]string{"*": key}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
