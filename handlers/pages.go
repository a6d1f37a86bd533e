// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/KpmgFuture-Academy/fa01-fin-Edo/middleware"
	"github.com/KpmgFuture-Academy/fa01-fin-Edo/render"
)

const (
	DashboardPage = "dashboard.html"
	ReviewPage    = "review.html"
)

type PageRenderer interface {
	Render(w http.ResponseWriter, page string, data any) error
}

// PageData is the request context handed to page templates
type PageData struct {
	Method    string
	Path      string
	RequestID string
}

type PageHandler struct {
	renderer PageRenderer
}

func NewPageHandler(renderer PageRenderer) *PageHandler {
	return &PageHandler{renderer: renderer}
}

// Dashboard handles GET /
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, DashboardPage)
}

// Review handles GET /review
func (h *PageHandler) Review(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, ReviewPage)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, page string) {
	data := PageData{
		Method:    r.Method,
		Path:      r.URL.Path,
		RequestID: middleware.RequestID(r.Context()),
	}

	err := h.renderer.Render(w, page, data)
	if err == nil {
		return
	}

	var renderErr *render.Error
	if !errors.As(err, &renderErr) {
		// The page was already sent with 200; the client went away mid-write
		slog.Warn("failed to write page",
			"page", page,
			"request_id", data.RequestID,
			"error", err,
		)
		return
	}

	slog.Error("failed to render page",
		"page", page,
		"request_id", data.RequestID,
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
