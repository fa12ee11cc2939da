package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dermclinic/internal/cache"
	"dermclinic/internal/config"
	"dermclinic/internal/insight"
	"dermclinic/internal/repository"
	"dermclinic/internal/service"
	"dermclinic/internal/transport/rest"
	"dermclinic/internal/transport/ws"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @title Derm Clinic API
// @version 1.0
// @description Bilingual insight scoring engine and clinic intake API
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Mail config
	mailConfig := config.DefaultMailConfig()
	if mailConfig.IsEnabled() {
		log.Println("Mail: API key configured ✓")
		log.Printf("  Lead inbox:        %s", mailConfig.LeadNotifyTo)
		log.Printf("  Appointment inbox: %s", mailConfig.AppointmentNotifyTo)
	} else {
		log.Println("Mail: NOT SET (notifications disabled)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	// Remove redis:// prefix if present
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	appointmentRepo := repository.NewAppointmentRepo(db)
	leadRepo := repository.NewLeadRepo(db)

	// Initialize caches
	savedCache := cache.NewSavedInsightCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	mailer := service.NewMailerService()
	insightSvc := service.NewInsightService(savedCache)
	appointmentSvc := service.NewAppointmentService(appointmentRepo, mailer)
	leadSvc := service.NewLeadService(leadRepo, mailer)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	appointmentSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:        authSvc,
		InsightService:     insightSvc,
		AppointmentService: appointmentSvc,
		LeadService:        leadSvc,
		WSHub:              wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Printf("Insight modules loaded: %d", len(insight.Modules))
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/insights")
		log.Println("  GET  /v1/insights/{slug}")
		log.Println("  POST /v1/insights/{slug}/evaluate")
		log.Println("  POST /v1/insights/{slug}/save")
		log.Println("  GET/DELETE /v1/insights/history")
		log.Println("  POST/GET /v1/appointments")
		log.Println("  POST/GET /v1/leads")
		log.Println("  WS  /v1/ws/dashboard")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
