package rest

import (
	"net/http"
	"os"

	"dermclinic/internal/service"
	"dermclinic/internal/transport/rest/handler"
	"dermclinic/internal/transport/rest/middleware"
	"dermclinic/internal/transport/ws"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService        *service.AuthService
	InsightService     *service.InsightService
	AppointmentService *service.AppointmentService
	LeadService        *service.LeadService
	WSHub              *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	insightHandler := handler.NewInsightHandler(c.InsightService)
	appointmentHandler := handler.NewAppointmentHandler(c.AppointmentService)
	leadHandler := handler.NewLeadHandler(c.LeadService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/insights", insightHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/insights/history", insightHandler.History).Methods("GET", "OPTIONS")
	v1.HandleFunc("/insights/history/{id}", insightHandler.RemoveHistory).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/insights/{slug}", insightHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/insights/{slug}/evaluate", insightHandler.Evaluate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/insights/{slug}/save", insightHandler.SaveResult).Methods("POST", "OPTIONS")
	v1.HandleFunc("/appointments", appointmentHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/leads", leadHandler.Create).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/dashboard", wsHandler.DashboardWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Dashboard routes (require dashboard auth)
	dashboardRoutes := v1.NewRoute().Subrouter()
	dashboardRoutes.Use(authMW.RequireDashboard)

	dashboardRoutes.HandleFunc("/appointments", appointmentHandler.List).Methods("GET", "OPTIONS")
	dashboardRoutes.HandleFunc("/appointments/{id}/status", appointmentHandler.UpdateStatus).Methods("PATCH", "OPTIONS")
	dashboardRoutes.HandleFunc("/leads", leadHandler.List).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PATCH, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization, X-Visitor-ID"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
