package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
)

const healthTimeout = 2 * time.Second

// Health reports whether every backing store answers a ping.
type Health struct {
	checks map[string]model.Pinger
	logger *logger.Logger
}

func NewHealth(checks map[string]model.Pinger, logger *logger.Logger) *Health {
	return &Health{checks: checks, logger: logger}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK

	for name, pinger := range h.checks {
		if err := pinger.Ping(ctx); err != nil {
			h.logger.Warn("Health handler: dependency unavailable",
				"dependency", name,
				"error", err.Error())
			resp.Checks[name] = "unavailable"
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	writeJSON(w, status, resp)
}
