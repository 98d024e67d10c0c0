package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samenwerkt-wbd/members-backend/config"
	"github.com/samenwerkt-wbd/members-backend/handlers"
	"github.com/samenwerkt-wbd/members-backend/mailer"
	"github.com/samenwerkt-wbd/members-backend/middleware"
	"github.com/samenwerkt-wbd/members-backend/monitoring"
	"github.com/samenwerkt-wbd/members-backend/services"
	"github.com/samenwerkt-wbd/members-backend/storage"
)

func main() {
	// Load .env file if it exists (optional - fails silently if not found)
	_ = godotenv.Load()

	config.SetupLogging(
		config.GetEnvOrDefault("LOG_FORMAT", "text"),
		config.GetEnvOrDefault("LOG_LEVEL", "info"),
	)

	cfg := config.Load()

	db, err := storage.Connect(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	mailClient, err := mailer.NewClient(&cfg.Mail)
	if err != nil {
		slog.Error("Failed to configure mail client", "error", err)
		os.Exit(1)
	}

	store := storage.NewSubmissionStore(db)
	notifier := mailer.NewNotifier(mailClient, cfg.Mail.From, cfg.Mail.Operator)
	service := services.NewSubmissionService(store, notifier)
	handler := handlers.NewSubmissionHandler(service)

	// The form endpoints are public; rate-limit them per client IP.
	formLimiter := middleware.NewRateLimiter(10, time.Minute)

	mux := http.NewServeMux()
	mux.Handle("/api/submit", formLimiter.Middleware(http.HandlerFunc(handler.SubmitMembership)))
	mux.Handle("/api/cafe", formLimiter.Middleware(http.HandlerFunc(handler.SubmitCafeRegistration)))
	mux.HandleFunc("/api/health", handlers.HealthHandler(
		cfg.Database.BackendName(),
		cfg.Mail.TransportDescription(),
	))
	mux.Handle("/metrics", monitoring.Handler())

	corsMiddleware := middleware.CORSMiddleware(cfg.Server.AllowedOrigin)
	chain := middleware.PanicRecovery(
		middleware.SecurityHeaders(
			middleware.RequestLogging(
				monitoring.Middleware(
					corsMiddleware(mux),
				),
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      chain,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		slog.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Server starting",
		"port", cfg.Server.Port,
		"database", cfg.Database.BackendName(),
		"mail", cfg.Mail.TransportDescription(),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
