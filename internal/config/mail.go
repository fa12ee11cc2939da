package config

import "os"

// MailConfig holds the transactional-email configuration. Notifications are
// best-effort: when the API key or recipient is missing the mailer logs and
// skips instead of failing the request.
type MailConfig struct {
	APIKey  string `json:"-"` // Never serialize
	BaseURL string `json:"baseUrl"`

	// From is the sender identity for all notification emails.
	From string `json:"from"`

	// LeadNotifyTo receives clinical-summary lead notifications.
	LeadNotifyTo string `json:"leadNotifyTo"`

	// AppointmentNotifyTo receives appointment-request notifications; falls
	// back to the lead inbox when unset.
	AppointmentNotifyTo string `json:"appointmentNotifyTo"`

	TimeoutMS int `json:"timeoutMs"`
}

// DefaultMailConfig returns the mail configuration from the environment
func DefaultMailConfig() *MailConfig {
	leadTo := os.Getenv("LEAD_NOTIFICATION_EMAIL")
	appointmentTo := os.Getenv("APPOINTMENT_NOTIFICATION_EMAIL")
	if appointmentTo == "" {
		appointmentTo = leadTo
	}

	return &MailConfig{
		APIKey:              os.Getenv("RESEND_API_KEY"),
		BaseURL:             "https://api.resend.com",
		From:                getEnvOrDefault("LEAD_FROM_EMAIL", "Website Lead <onboarding@resend.dev>"),
		LeadNotifyTo:        leadTo,
		AppointmentNotifyTo: appointmentTo,
		TimeoutMS:           10000, // 10 second default timeout
	}
}

// IsEnabled returns true if the email API is configured
func (c *MailConfig) IsEnabled() bool {
	return c.APIKey != "" && (c.LeadNotifyTo != "" || c.AppointmentNotifyTo != "")
}

// SendEndpoint returns the full endpoint for sending an email
func (c *MailConfig) SendEndpoint() string {
	return c.BaseURL + "/emails"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
