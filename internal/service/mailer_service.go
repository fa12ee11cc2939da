package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"dermclinic/internal/config"
	"dermclinic/internal/model"
)

// MailerService delivers notification emails through the Resend HTTP API.
// Delivery is best-effort: when the API is not configured Send* calls are
// skipped, and callers treat failures as non-fatal.
type MailerService struct {
	config *config.MailConfig
	client *http.Client
}

// NewMailerService creates a new mailer service
func NewMailerService() *MailerService {
	cfg := config.DefaultMailConfig()
	return &MailerService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// IsEnabled reports whether the email API is configured
func (s *MailerService) IsEnabled() bool {
	return s.config.IsEnabled()
}

// SendLeadNotification emails the clinic inbox about a new insight lead
func (s *MailerService) SendLeadNotification(ctx context.Context, lead *model.Lead) error {
	if !s.config.IsEnabled() || s.config.LeadNotifyTo == "" {
		return nil
	}

	subject := "New Insight Lead — " + orDefault(lead.Condition, "Clinical Summary")
	body := emailTable("New Clinical Summary Request", []emailRow{
		{"Name", lead.Name},
		{"Email", lead.Email},
		{"WhatsApp", orDefault(lead.Phone, "Not provided")},
		{"Insight", lead.Condition},
		{"Level", lead.Level},
	}, "Submitted from the clinic website Insights tool.")

	return s.send(ctx, s.config.LeadNotifyTo, subject, body, "")
}

// SendAppointmentNotification emails the clinic inbox about a new
// appointment request
func (s *MailerService) SendAppointmentNotification(ctx context.Context, a *model.Appointment) error {
	if !s.config.IsEnabled() || s.config.AppointmentNotifyTo == "" {
		return nil
	}

	subject := "Appointment Request — " + orDefault(a.Condition, "General")
	body := emailTable("New Appointment Request", []emailRow{
		{"Name", a.Name},
		{"Phone / WhatsApp", a.Phone},
		{"Email", orDefault(a.Email, "Not provided")},
		{"Condition", orDefault(a.Condition, "General")},
		{"Preferred time", a.Preferred},
		{"Status", "New"},
		{"ID", a.ID},
	}, "Submitted from the clinic website appointment request form.")

	return s.send(ctx, s.config.AppointmentNotifyTo, subject, body, a.Email)
}

// send makes a request to the Resend API
func (s *MailerService) send(ctx context.Context, to, subject, htmlBody, replyTo string) error {
	reqBody := map[string]interface{}{
		"from":    s.config.From,
		"to":      to,
		"subject": subject,
		"html":    htmlBody,
	}
	if replyTo != "" {
		reqBody["reply_to"] = replyTo
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.SendEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

type emailRow struct {
	Label string
	Value string
}

func emailTable(heading string, rows []emailRow, footer string) string {
	var sb strings.Builder
	sb.WriteString(`<div style="font-family: ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial; line-height: 1.5;">`)
	sb.WriteString(`<h2 style="margin:0 0 12px;">` + html.EscapeString(heading) + `</h2>`)
	sb.WriteString(`<table style="border-collapse: collapse; width: 100%; max-width: 640px;">`)
	for _, row := range rows {
		sb.WriteString(`<tr><td style="padding:6px 0; color:#444;"><strong>` + html.EscapeString(row.Label) + `</strong></td>`)
		sb.WriteString(`<td style="padding:6px 0;">` + html.EscapeString(row.Value) + `</td></tr>`)
	}
	sb.WriteString(`</table>`)
	sb.WriteString(`<p style="margin:16px 0 0; color:#666; font-size: 13px;">` + html.EscapeString(footer) + `</p>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
