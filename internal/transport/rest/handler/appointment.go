package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"dermclinic/internal/i18n"
	"dermclinic/internal/model"
	"dermclinic/internal/service"

	"github.com/gorilla/mux"
)

// AppointmentHandler handles appointment request endpoints
type AppointmentHandler struct {
	appointmentSvc *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentSvc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentSvc: appointmentSvc}
}

// CreateAppointmentRequest is the request body for an appointment request.
// Company is a honeypot: real visitors never see the field, so a non-empty
// value marks the submission as a bot and it is silently accepted-and-dropped.
type CreateAppointmentRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Condition string `json:"condition"`
	Preferred string `json:"preferred"`
	Locale    string `json:"locale"`
	Company   string `json:"company"`
}

// UpdateStatusRequest is the request body for a status change
type UpdateStatusRequest struct {
	Status model.AppointmentStatus `json:"status"`
}

// Create handles POST /v1/appointments
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Company != "" {
		writeJSON(w, http.StatusCreated, map[string]string{"status": "received"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Preferred = strings.TrimSpace(req.Preferred)
	if utf8.RuneCountInString(req.Name) < 2 {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if len(req.Phone) < 8 {
		writeError(w, http.StatusBadRequest, "phone is required")
		return
	}
	if req.Email != "" && !isValidEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "valid email is required")
		return
	}
	if req.Preferred == "" {
		writeError(w, http.StatusBadRequest, "preferred time is required")
		return
	}

	appointment := &model.Appointment{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Condition: strings.TrimSpace(req.Condition),
		Preferred: req.Preferred,
		Locale:    i18n.Parse(req.Locale),
	}

	whatsappURL, err := h.appointmentSvc.Create(r.Context(), appointment)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":          appointment.ID,
		"status":      "received",
		"whatsappUrl": whatsappURL,
	})
}

// List handles GET /v1/appointments (dashboard)
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if appointments == nil {
		appointments = []*model.Appointment{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"appointments": appointments})
}

// UpdateStatus handles PATCH /v1/appointments/{id}/status (dashboard)
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appointment, err := h.appointmentSvc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrAppointmentNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, appointment)
}
