package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
)

const maxBodyBytes = 1 << 20

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a single JSON object into dst. Unknown fields, trailing
// data and oversized bodies are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return apiErrors.NewErrInvalidRequestBody()
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apiErrors.NewErrInvalidRequestBody()
	}
	return nil
}
