package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dermclinic/internal/service"
)

func newTestMiddleware(t *testing.T) (*AuthMiddleware, string) {
	t.Helper()
	t.Setenv("DASHBOARD_USERNAME", "admin")
	t.Setenv("DASHBOARD_PASSWORD", "clinic-pass")
	t.Setenv("JWT_SECRET", "middleware-test-secret")

	authSvc := service.NewAuthService()
	resp, err := authSvc.Login("admin", "clinic-pass")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	return NewAuthMiddleware(authSvc), resp.Token
}

func TestRequireDashboard(t *testing.T) {
	mw, token := newTestMiddleware(t)

	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetDashboardID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := mw.RequireDashboard(next)

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
	}{
		{"bearer header", "Bearer " + token, "", http.StatusOK},
		{"case-insensitive scheme", "bearer " + token, "", http.StatusOK},
		{"query param fallback", "", token, http.StatusOK},
		{"no token", "", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID = ""
			url := "/v1/appointments"
			if tt.query != "" {
				url += "?token=" + tt.query
			}
			req := httptest.NewRequest("GET", url, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && gotID == "" {
				t.Error("dashboard id missing from request context")
			}
		})
	}
}
