package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"dermclinic/internal/i18n"
	"dermclinic/internal/insight"
	"dermclinic/internal/model"
	"dermclinic/internal/service"

	"github.com/gorilla/mux"
)

// visitorHeader carries the anonymous visitor id for saved-history routes.
const visitorHeader = "X-Visitor-ID"

// InsightHandler handles insight module endpoints
type InsightHandler struct {
	insightSvc *service.InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightSvc *service.InsightService) *InsightHandler {
	return &InsightHandler{insightSvc: insightSvc}
}

// moduleSummary is the catalogue view of a module, without its questions.
type moduleSummary struct {
	Slug        string    `json:"slug"`
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	Questions   int       `json:"questions"`
}

// EvaluateRequest is the request body for running a module
type EvaluateRequest struct {
	Answers insight.Answers `json:"answers"`
	Locale  string          `json:"locale"`
}

// List handles GET /v1/insights
func (h *InsightHandler) List(w http.ResponseWriter, r *http.Request) {
	modules := h.insightSvc.Modules()
	summaries := make([]moduleSummary, 0, len(modules))
	for _, m := range modules {
		summaries = append(summaries, moduleSummary{
			Slug:        m.Slug,
			Title:       m.Title,
			Description: m.Description,
			Questions:   len(m.Questions),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"modules": summaries})
}

// Get handles GET /v1/insights/{slug}
func (h *InsightHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	m, err := h.insightSvc.Module(slug)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Evaluate handles POST /v1/insights/{slug}/evaluate
func (h *InsightHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.insightSvc.Evaluate(slug, req.Answers, i18n.Parse(req.Locale))
	if err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	recommendations, _ := h.insightSvc.Recommendations(slug)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result":          result,
		"recommendations": recommendations,
	})
}

// SaveResult handles POST /v1/insights/{slug}/save
func (h *InsightHandler) SaveResult(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	visitorID := r.Header.Get(visitorHeader)
	if visitorID == "" {
		writeError(w, http.StatusBadRequest, "missing "+visitorHeader+" header")
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.insightSvc.SaveResult(r.Context(), visitorID, slug, req.Answers, i18n.Parse(req.Locale))
	if err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		if errors.Is(err, service.ErrEmptyAnswers) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// History handles GET /v1/insights/history
func (h *InsightHandler) History(w http.ResponseWriter, r *http.Request) {
	visitorID := r.Header.Get(visitorHeader)
	if visitorID == "" {
		writeError(w, http.StatusBadRequest, "missing "+visitorHeader+" header")
		return
	}

	entries, err := h.insightSvc.SavedResults(r.Context(), visitorID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []*model.SavedInsight{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

// RemoveHistory handles DELETE /v1/insights/history/{id}
func (h *InsightHandler) RemoveHistory(w http.ResponseWriter, r *http.Request) {
	visitorID := r.Header.Get(visitorHeader)
	if visitorID == "" {
		writeError(w, http.StatusBadRequest, "missing "+visitorHeader+" header")
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.insightSvc.RemoveSavedResult(r.Context(), visitorID, id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"removed": id})
}
