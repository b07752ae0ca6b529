package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/volunteerhub/api/internal/config"
	"github.com/volunteerhub/api/internal/database"
	"github.com/volunteerhub/api/internal/handler"
	"github.com/volunteerhub/api/internal/jobs"
	"github.com/volunteerhub/api/internal/middleware"
	"github.com/volunteerhub/api/internal/repository"
	"github.com/volunteerhub/api/internal/service"
	"github.com/volunteerhub/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	eventRepo := repository.NewEventRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	tokenService := service.NewTokenService(service.TokenServiceConfig{
		JWTService: jwtService,
		TokenRepo:  tokenRepo,
	})

	profileService := service.NewProfileService(service.ProfileServiceConfig{
		ProfileRepo: profileRepo,
	})

	matchingService := service.NewMatchingService(service.MatchingServiceConfig{
		ProfileRepo: profileRepo,
		EventRepo:   eventRepo,
	})

	notificationService := service.NewNotificationService(service.NotificationServiceConfig{
		NotificationRepo: notificationRepo,
		MatchingService:  matchingService,
		ProfileRepo:      profileRepo,
	})

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:        userRepo,
		TokenService:    tokenService,
		ProfileRemover:  profileService,
		WelcomeNotifier: notificationService,
	})

	eventService := service.NewEventService(service.EventServiceConfig{
		EventRepo: eventRepo,
		Notifier:  notificationService,
	})

	reportService := service.NewReportService(service.ReportServiceConfig{
		ProfileRepo: profileRepo,
		EventRepo:   eventRepo,
	})

	// Background jobs
	if cfg.Jobs.RemindersEnabled {
		reminder := jobs.NewEventReminder(eventRepo, notificationService, cfg.Jobs.ReminderInterval, cfg.Jobs.ReminderWindow)
		reminder.Start()
		defer reminder.Stop()
	}

	tokenCleanup := jobs.NewTokenCleanup(tokenRepo, time.Hour)
	tokenCleanup.Start()
	defer tokenCleanup.Stop()

	// Rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{})
	defer rateLimiter.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	eventHandler := handler.NewEventHandler(eventService)
	matchHandler := handler.NewMatchHandler(matchingService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	reportHandler := handler.NewReportHandler(reportService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoints
	mux.HandleFunc("GET /health", handler.Health)
	mux.Handle("GET /health/ready", handler.Ready(db))

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /v1/auth/refresh", authHandler.Refresh)

	// Auth endpoints (protected)
	authMiddleware := middleware.Auth(authService)
	adminMiddleware := func(h http.Handler) http.Handler {
		return authMiddleware(middleware.RequireAdmin()(h))
	}
	mux.Handle("POST /v1/auth/logout", authMiddleware(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))
	mux.Handle("PATCH /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.UpdateMe)))
	mux.Handle("DELETE /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.DeleteMe)))
	mux.Handle("POST /v1/auth/password", authMiddleware(http.HandlerFunc(authHandler.ChangePassword)))

	// Profile endpoints (own profile, auth required)
	mux.Handle("POST /v1/profile", authMiddleware(http.HandlerFunc(profileHandler.Create)))
	mux.Handle("GET /v1/profile", authMiddleware(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("PATCH /v1/profile", authMiddleware(http.HandlerFunc(profileHandler.Update)))
	mux.Handle("DELETE /v1/profile", authMiddleware(http.HandlerFunc(profileHandler.Delete)))

	// Volunteer directory endpoints
	mux.Handle("GET /v1/volunteers", authMiddleware(http.HandlerFunc(profileHandler.List)))
	mux.Handle("GET /v1/volunteers/{volunteerId}", authMiddleware(http.HandlerFunc(profileHandler.GetByID)))

	// Event endpoints (reads are public, mutations require auth)
	mux.HandleFunc("GET /v1/events", eventHandler.List)
	mux.HandleFunc("GET /v1/events/{eventId}", eventHandler.Get)
	mux.Handle("POST /v1/events", authMiddleware(http.HandlerFunc(eventHandler.Create)))
	mux.Handle("PATCH /v1/events/{eventId}", authMiddleware(http.HandlerFunc(eventHandler.Update)))
	mux.Handle("DELETE /v1/events/{eventId}", authMiddleware(http.HandlerFunc(eventHandler.Delete)))

	// Matching endpoints
	mux.Handle("GET /v1/events/{eventId}/matches", authMiddleware(http.HandlerFunc(matchHandler.VolunteersForEvent)))
	mux.Handle("GET /v1/volunteers/{volunteerId}/matches", authMiddleware(http.HandlerFunc(matchHandler.EventsForVolunteer)))
	mux.Handle("GET /v1/volunteers/{volunteerId}/matches/{eventId}", authMiddleware(http.HandlerFunc(matchHandler.Score)))

	// Notification endpoints
	mux.Handle("GET /v1/notifications", authMiddleware(http.HandlerFunc(notificationHandler.List)))
	mux.Handle("PATCH /v1/notifications/{notificationId}/read", authMiddleware(http.HandlerFunc(notificationHandler.MarkRead)))
	mux.Handle("DELETE /v1/notifications/{notificationId}", authMiddleware(http.HandlerFunc(notificationHandler.Delete)))

	// Report endpoints (admin only)
	mux.Handle("GET /v1/reports/volunteers/{volunteerId}", adminMiddleware(http.HandlerFunc(reportHandler.Volunteer)))
	mux.Handle("GET /v1/reports/events/{eventId}", adminMiddleware(http.HandlerFunc(reportHandler.Event)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
