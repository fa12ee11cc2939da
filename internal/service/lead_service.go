package service

import (
	"context"
	"log"
	"time"

	"dermclinic/internal/i18n"
	"dermclinic/internal/model"
	"dermclinic/internal/repository"

	"github.com/google/uuid"
)

// LeadService captures clinical-summary requests from the Insights tool.
type LeadService struct {
	leadRepo repository.LeadRepo
	mailer   *MailerService
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repository.LeadRepo, mailer *MailerService) *LeadService {
	return &LeadService{
		leadRepo: leadRepo,
		mailer:   mailer,
	}
}

// Submit persists a lead and notifies the clinic inbox
func (s *LeadService) Submit(ctx context.Context, lead *model.Lead) error {
	lead.ID = uuid.New().String()
	lead.CreatedAt = time.Now()
	if !i18n.IsLocale(string(lead.Locale)) {
		lead.Locale = i18n.LocaleEN
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return err
	}

	if err := s.mailer.SendLeadNotification(ctx, lead); err != nil {
		log.Printf("lead %s: notification email failed: %v", lead.ID, err)
	}
	return nil
}

// List returns captured leads, newest first
func (s *LeadService) List(ctx context.Context) ([]*model.Lead, error) {
	return s.leadRepo.List(ctx)
}
