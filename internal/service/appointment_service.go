package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"dermclinic/internal/i18n"
	"dermclinic/internal/model"
	"dermclinic/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

// AppointmentService handles appointment request intake and the dashboard
// status workflow.
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepo
	mailer          *MailerService
	broadcaster     Broadcaster
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(appointmentRepo repository.AppointmentRepo, mailer *MailerService) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		mailer:          mailer,
	}
}

// SetBroadcaster sets the websocket broadcaster for dashboard events
func (s *AppointmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create persists a new appointment request, notifies the clinic inbox and
// returns the stored record with a WhatsApp deep link the visitor can use to
// continue the conversation directly.
func (s *AppointmentService) Create(ctx context.Context, a *model.Appointment) (string, error) {
	a.ID = uuid.New().String()
	a.CreatedAt = time.Now()
	a.Status = model.AppointmentNew
	if !i18n.IsLocale(string(a.Locale)) {
		a.Locale = i18n.LocaleEN
	}

	if err := s.appointmentRepo.Create(ctx, a); err != nil {
		return "", err
	}

	if err := s.mailer.SendAppointmentNotification(ctx, a); err != nil {
		log.Printf("appointment %s: notification email failed: %v", a.ID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToDashboard("appointment_created", a)
	}

	return WhatsAppLink(a), nil
}

// GetByID returns one appointment request
func (s *AppointmentService) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	a, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAppointmentNotFound
	}
	return a, nil
}

// List returns appointment requests, newest first
func (s *AppointmentService) List(ctx context.Context) ([]*model.Appointment, error) {
	return s.appointmentRepo.List(ctx)
}

// UpdateStatus moves an appointment through the dashboard workflow
func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error) {
	if !model.IsValidAppointmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	a, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	a.Status = status

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToDashboard("appointment_updated", a)
	}

	return a, nil
}

// WhatsAppLink builds the wa.me deep link with a prefilled message in the
// visitor's language.
func WhatsAppLink(a *model.Appointment) string {
	var msg string
	if a.Locale == i18n.LocaleAR {
		msg = fmt.Sprintf("مرحبًا، أود حجز موعد. الاسم: %s، الحالة: %s، الوقت المفضل: %s",
			a.Name, orDefault(a.Condition, "عام"), a.Preferred)
	} else {
		msg = fmt.Sprintf("Hello, I would like to book an appointment. Name: %s, Condition: %s, Preferred time: %s",
			a.Name, orDefault(a.Condition, "General"), a.Preferred)
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", i18n.WhatsAppNumber(), url.QueryEscape(msg))
}
