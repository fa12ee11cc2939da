package service

import (
	"context"
	"strings"
	"testing"

	"dermclinic/internal/i18n"
	"dermclinic/internal/model"
)

type fakeAppointmentRepo struct {
	byID map[string]*model.Appointment
	ids  []string
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: make(map[string]*model.Appointment)}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, a *model.Appointment) error {
	clone := *a
	r.byID[a.ID] = &clone
	r.ids = append(r.ids, a.ID)
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	if a, ok := r.byID[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) List(ctx context.Context) ([]*model.Appointment, error) {
	out := make([]*model.Appointment, 0, len(r.ids))
	for i := len(r.ids) - 1; i >= 0; i-- {
		out = append(out, r.byID[r.ids[i]])
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	if a, ok := r.byID[id]; ok {
		a.Status = status
	}
	return nil
}

type broadcastEvent struct {
	Type    string
	Payload interface{}
}

type fakeBroadcaster struct {
	events []broadcastEvent
}

func (b *fakeBroadcaster) BroadcastToDashboard(msgType string, payload interface{}) {
	b.events = append(b.events, broadcastEvent{Type: msgType, Payload: payload})
}

// disabledMailer builds a mailer that cannot reach a real API even when the
// host environment carries Resend credentials.
func disabledMailer(t *testing.T) *MailerService {
	t.Helper()
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("LEAD_NOTIFICATION_EMAIL", "")
	t.Setenv("APPOINTMENT_NOTIFICATION_EMAIL", "")
	return NewMailerService()
}

func TestDisabledMailerSkipsSending(t *testing.T) {
	mailer := disabledMailer(t)
	if mailer.IsEnabled() {
		t.Fatal("mailer enabled with blank environment")
	}
	if err := mailer.SendAppointmentNotification(context.Background(), &model.Appointment{Name: "X"}); err != nil {
		t.Errorf("disabled mailer returned error: %v", err)
	}
}

func TestAppointmentCreate(t *testing.T) {
	repo := newFakeAppointmentRepo()
	broadcaster := &fakeBroadcaster{}
	svc := NewAppointmentService(repo, disabledMailer(t))
	svc.SetBroadcaster(broadcaster)

	a := &model.Appointment{
		Name:      "Sara Mahmoud",
		Phone:     "+201001234567",
		Condition: "acne",
		Preferred: "Sunday afternoon",
	}
	waURL, err := svc.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if a.ID == "" {
		t.Error("Create() did not assign an id")
	}
	if a.Status != model.AppointmentNew {
		t.Errorf("status = %q, want %q", a.Status, model.AppointmentNew)
	}
	if a.CreatedAt.IsZero() {
		t.Error("Create() did not set CreatedAt")
	}
	if a.Locale != i18n.LocaleEN {
		t.Errorf("locale defaulted to %q, want %q", a.Locale, i18n.LocaleEN)
	}

	stored, _ := repo.GetByID(context.Background(), a.ID)
	if stored == nil {
		t.Fatal("appointment not persisted")
	}

	if !strings.HasPrefix(waURL, "https://wa.me/"+i18n.WhatsAppNumber()+"?text=") {
		t.Errorf("whatsapp link = %q", waURL)
	}
	if !strings.Contains(waURL, "Sara") {
		t.Errorf("whatsapp link missing visitor name: %q", waURL)
	}

	if len(broadcaster.events) != 1 || broadcaster.events[0].Type != "appointment_created" {
		t.Errorf("broadcast events = %+v, want one appointment_created", broadcaster.events)
	}
}

func TestAppointmentWhatsAppLinkArabic(t *testing.T) {
	a := &model.Appointment{
		Name:      "أحمد علي",
		Condition: "hair-loss",
		Preferred: "مساء الثلاثاء",
		Locale:    i18n.LocaleAR,
	}
	link := WhatsAppLink(a)
	if !strings.HasPrefix(link, "https://wa.me/"+i18n.WhatsAppNumber()+"?text=") {
		t.Fatalf("link = %q", link)
	}
	// Prefilled message must be URL-escaped, so no raw Arabic or spaces.
	if strings.ContainsAny(link, " أ") {
		t.Errorf("link not fully escaped: %q", link)
	}
}

func TestAppointmentStatusFlow(t *testing.T) {
	repo := newFakeAppointmentRepo()
	broadcaster := &fakeBroadcaster{}
	svc := NewAppointmentService(repo, disabledMailer(t))
	svc.SetBroadcaster(broadcaster)

	a := &model.Appointment{Name: "Mona", Phone: "+20100987", Preferred: "Morning"}
	if _, err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for _, status := range []model.AppointmentStatus{
		model.AppointmentContacted,
		model.AppointmentBooked,
		model.AppointmentClosed,
	} {
		updated, err := svc.UpdateStatus(context.Background(), a.ID, status)
		if err != nil {
			t.Fatalf("UpdateStatus(%s) error = %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("status = %q, want %q", updated.Status, status)
		}
	}

	stored, _ := repo.GetByID(context.Background(), a.ID)
	if stored.Status != model.AppointmentClosed {
		t.Errorf("persisted status = %q, want closed", stored.Status)
	}

	// One create event plus three updates.
	if len(broadcaster.events) != 4 {
		t.Errorf("broadcast events = %d, want 4", len(broadcaster.events))
	}
}

func TestAppointmentUpdateStatusErrors(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewAppointmentService(repo, disabledMailer(t))

	if _, err := svc.UpdateStatus(context.Background(), "missing", model.AppointmentBooked); err != ErrAppointmentNotFound {
		t.Errorf("unknown id: error = %v, want ErrAppointmentNotFound", err)
	}

	a := &model.Appointment{Name: "Omar", Phone: "+20100555", Preferred: "Evening"}
	if _, err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), a.ID, "archived"); err != ErrInvalidStatus {
		t.Errorf("bad status: error = %v, want ErrInvalidStatus", err)
	}
}
