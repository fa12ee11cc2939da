package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"dermclinic/internal/i18n"
	"dermclinic/internal/model"
	"dermclinic/internal/service"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// LeadHandler handles clinical-summary lead endpoints
type LeadHandler struct {
	leadSvc *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadSvc *service.LeadService) *LeadHandler {
	return &LeadHandler{leadSvc: leadSvc}
}

// CreateLeadRequest is the request body for a lead submission. Company is
// the same honeypot field the appointment form uses.
type CreateLeadRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Condition string `json:"condition"`
	Level     string `json:"level"`
	Locale    string `json:"locale"`
	Company   string `json:"company"`
}

// Create handles POST /v1/leads
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Company != "" {
		writeJSON(w, http.StatusCreated, map[string]string{"status": "received"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if utf8.RuneCountInString(req.Name) < 2 {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !isValidEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "valid email is required")
		return
	}

	lead := &model.Lead{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     strings.TrimSpace(req.Phone),
		Condition: strings.TrimSpace(req.Condition),
		Level:     strings.TrimSpace(req.Level),
		Locale:    i18n.Parse(req.Locale),
	}

	if err := h.leadSvc.Submit(r.Context(), lead); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":     lead.ID,
		"status": "received",
	})
}

// List handles GET /v1/leads (dashboard)
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if leads == nil {
		leads = []*model.Lead{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"leads": leads})
}
