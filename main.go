package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"esummit/config"
	_ "esummit/docs"
	"esummit/internal/adapters/email"
	httpdelivery "esummit/internal/delivery/http"
	"esummit/internal/delivery/http/controllers"
	"esummit/internal/delivery/http/middleware"
	"esummit/internal/domain"
	"esummit/internal/repository"
	"esummit/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title RSCOE E-Club E-Summit API
// @version 1.0
// @description Speakers, events, ticket orders and past-edition highlights for the E-Summit website.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger().Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	// The API starts without a database; record routes then answer 500 and /test reports the state.
	var store domain.DocumentStore
	if cfg.DBUrl == "" {
		logger.Warn("DATABASE_URL not set, starting without a database")
	} else {
		openCtx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
		s, err := repository.Open(openCtx, cfg.DBUrl, cfg.DBName)
		cancel()
		if err != nil {
			logger.Warn("database not available, starting without it", "err", err)
		} else {
			store = s
			logger.Info("database connected", "database", s.Name())
		}
	}
	defer func() {
		if store == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			logger.Error("failed to close database", "err", err)
		}
	}()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.SESRegion,
			AccessKeyID:        cfg.Mail.SESAccessKeyID,
			SecretAccessKey:    cfg.Mail.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		logger.Error("failed to parse email templates", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, renderer)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	timeout := cfg.DBTimeout
	router := httpdelivery.NewRouter(httpdelivery.Controllers{
		System:     controllers.NewSystemController(services.NewDiagnosticsService(store, cfg.DBUrl != "", timeout)),
		Speakers:   controllers.NewSpeakerController(logger, services.NewSpeakerService(store, timeout)),
		Events:     controllers.NewEventController(logger, services.NewEventService(store, timeout)),
		Tickets:    controllers.NewTicketController(logger, services.NewTicketService(store, emailService, logger, timeout)),
		Highlights: controllers.NewHighlightController(logger, services.NewHighlightService(store, timeout)),
	}, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpdelivery.WithMiddleware(router, logger, cfg.AllowedOrigins, metrics),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}
	logger.Info("server shutdown complete")
}
