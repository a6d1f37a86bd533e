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

// ResponseStore is the persistence the survey endpoints need
type ResponseStore interface {
	Insert(ctx context.Context, question, response string) (int64, error)
	ListAll(ctx context.Context) ([]models.SurveyResponse, error)
}

type SurveyHandler struct {
	store ResponseStore
}

func NewSurveyHandler(store ResponseStore) *SurveyHandler {
	return &SurveyHandler{store: store}
}

// SubmitSurvey handles POST /submit-survey
func (h *SurveyHandler) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate before touching the store
	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.store.Insert(r.Context(), req.Question, req.Response)
	if err != nil {
		slog.Error("failed to insert survey response",
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("survey response saved", "id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitSurveyResponse{
		Message: models.MessageSaved,
	})
}

// GetResponses handles GET /get-responses
// Returns every stored response in ascending id order
func (h *SurveyHandler) GetResponses(w http.ResponseWriter, r *http.Request) {
	responses, err := h.store.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list survey responses",
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, responses)
}
