// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/KpmgFuture-Academy/fa01-fin-Edo/middleware"
	"github.com/KpmgFuture-Academy/fa01-fin-Edo/models"
)

type StoreStatus interface {
	Ping(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	Driver() string
}

type HealthHandler struct {
	store StoreStatus
}

func NewHealthHandler(store StoreStatus) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		slog.Warn("health check failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "store unreachable")
		return
	}

	n, err := h.store.Count(r.Context())
	if err != nil {
		slog.Warn("health check count failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "store unreachable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Driver:    h.store.Driver(),
		Responses: n,
	})
}
