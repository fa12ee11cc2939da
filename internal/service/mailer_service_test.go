package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dermclinic/internal/config"
	"dermclinic/internal/model"
)

func testMailer(baseURL string) *MailerService {
	return &MailerService{
		config: &config.MailConfig{
			APIKey:              "test-key",
			BaseURL:             baseURL,
			From:                "Website Lead <onboarding@resend.dev>",
			LeadNotifyTo:        "leads@clinic.example",
			AppointmentNotifyTo: "desk@clinic.example",
			TimeoutMS:           2000,
		},
		client: http.DefaultClient,
	}
}

func TestSendLeadNotification(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/emails" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer srv.Close()

	mailer := testMailer(srv.URL)
	lead := &model.Lead{
		Name:      "Omar <script>",
		Email:     "omar@example.com",
		Condition: "eczema",
		Level:     "evaluation",
	}
	if err := mailer.SendLeadNotification(context.Background(), lead); err != nil {
		t.Fatalf("SendLeadNotification() error = %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody["to"] != "leads@clinic.example" {
		t.Errorf("to = %v", gotBody["to"])
	}
	html, _ := gotBody["html"].(string)
	if strings.Contains(html, "<script>") {
		t.Error("lead name not HTML-escaped in email body")
	}
	if !strings.Contains(html, "eczema") {
		t.Error("email body missing condition")
	}
}

func TestSendAppointmentNotificationSetsReplyTo(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	mailer := testMailer(srv.URL)
	a := &model.Appointment{
		ID:        "apt-1",
		Name:      "Sara",
		Phone:     "+20100123",
		Email:     "sara@example.com",
		Preferred: "Sunday",
	}
	if err := mailer.SendAppointmentNotification(context.Background(), a); err != nil {
		t.Fatalf("SendAppointmentNotification() error = %v", err)
	}
	if gotBody["reply_to"] != "sara@example.com" {
		t.Errorf("reply_to = %v", gotBody["reply_to"])
	}
}

func TestSendReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	mailer := testMailer(srv.URL)
	err := mailer.SendLeadNotification(context.Background(), &model.Lead{Name: "X", Email: "x@example.com"})
	if err == nil {
		t.Fatal("expected error for 422 response")
	}
	if !strings.Contains(err.Error(), "422") {
		t.Errorf("error = %v, want status code in message", err)
	}
}

func TestSendSkippedWhenDisabled(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	mailer := testMailer(srv.URL)
	mailer.config.APIKey = ""

	if err := mailer.SendLeadNotification(context.Background(), &model.Lead{Name: "X", Email: "x@example.com"}); err != nil {
		t.Fatalf("disabled mailer returned error: %v", err)
	}
	if called {
		t.Error("disabled mailer still called the API")
	}
}
