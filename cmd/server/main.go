// Command server runs the playerone tournament registration API.
//
//go:generate swag init -g cmd/server/main.go -o docs --parseInternal
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"playerone/config"
	_ "playerone/docs"
	"playerone/internal/adapters/auth"
	"playerone/internal/adapters/email"
	delivery "playerone/internal/delivery/http"
	"playerone/internal/delivery/http/controllers"
	"playerone/internal/delivery/http/middleware"
	"playerone/internal/repository/postgres"
	"playerone/internal/services"
)

// @title PlayerOne API
// @version 1.0
// @description Esports tournament registration: events, capacity-limited registrations and organizer review.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token from /api/auth/login, e.g. "Bearer eyJ..."
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := config.NewLogger()
	if err := run(ctx, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := postgres.Migrate(db); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	regRepo := postgres.NewEventRegistrationRepository(db)
	tx := postgres.NewTransactor(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	userService := services.NewUserService(userRepo,
		auth.NewBcryptHasher(bcrypt.DefaultCost),
		auth.NewJWTIssuer(cfg.JWTSecret),
		cfg.JWTExpiry,
		emailService,
		logger,
		cfg.RequestTimeout,
	)
	eventService := services.NewEventService(eventRepo, regRepo, tx, emailService, logger, cfg.RequestTimeout)
	queryService := services.NewEventQueryService(eventRepo, cfg.RequestTimeout)
	registrationService := services.NewRegistrationService(eventRepo, regRepo, tx, emailService, logger, cfg.RequestTimeout)

	if cfg.StatusRefreshInterval > 0 {
		scheduler := services.NewStatusScheduler(eventRepo, cfg.StatusRefreshInterval, logger, cfg.RequestTimeout)
		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("start status scheduler: %w", err)
		}
		defer func() {
			if err := scheduler.Stop(); err != nil {
				logger.Error("stop status scheduler", "err", err)
			}
		}()
	}

	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RPS:            cfg.AuthRateLimitRPS,
		Burst:          cfg.AuthRateLimitBurst,
		TrustedProxies: cfg.TrustedProxies,
	})
	go limiter.RunEviction(ctx.Done())

	mux := delivery.NewRouter(delivery.RouterDeps{
		Logger:        logger,
		Auth:          controllers.NewAuthController(logger, userService),
		Events:        controllers.NewEventController(logger, eventService, queryService),
		Registrations: controllers.NewRegistrationController(logger, registrationService),
		Health:        controllers.NewHealthController(logger, db),
		Verifier:      auth.NewJWTVerifier(cfg.JWTSecret),
		Resolver:      userService,
		AuthLimiter:   limiter,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           delivery.NewHandler(mux, logger, cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
