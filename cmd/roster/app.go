package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"eventroster/config"
	"eventroster/internal/adapters/cache"
	"eventroster/internal/adapters/email"
	"eventroster/internal/adapters/eventapi"
	"eventroster/internal/adapters/inscriptionapi"
	"eventroster/internal/adapters/queue"
	"eventroster/internal/domain"
	"eventroster/internal/repository/postgres"
	"eventroster/internal/services"
	"eventroster/internal/telemetry"
)

// app holds the collaborators shared by every detail view of a process.
type app struct {
	cfg          *config.Config
	logger       *slog.Logger
	tracing      *telemetry.Provider
	events       domain.EventLookup
	inscriptions domain.InscriptionService
	notifier     domain.CancellationNotifier
	joinRule     domain.JoinRule
	cancelPolicy domain.CancelPolicy
	closers      []func() error
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	joinRule, err := domain.ParseJoinRule(cfg.RosterJoin)
	if err != nil {
		return nil, fmt.Errorf("ROSTER_JOIN: %w", err)
	}

	tracing, err := telemetry.NewProvider(telemetry.Config{
		Exporter:     cfg.TracingExporter,
		OTLPEndpoint: cfg.TracingOTLPEndpoint,
		SampleRate:   cfg.TracingSampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		tracing:  tracing,
		joinRule: joinRule,
		cancelPolicy: domain.AnyPolicy(
			domain.AllowOwnInscription,
			domain.AllowUsernames(cfg.CancelAllowedUsernames...),
			domain.AllowRoles(cfg.CancelAllowedRoles...),
		),
	}
	if tracing.Enabled() {
		logger.Info("tracing enabled", "exporter", cfg.TracingExporter, "sample_rate", cfg.TracingSampleRate)
	}
	a.closers = append(a.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return tracing.Shutdown(ctx)
	})

	switch cfg.Source {
	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("database: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			_ = db.Close()
			_ = a.Close()
			return nil, fmt.Errorf("database ping: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		a.events = postgres.NewEventRepository(db)
		a.inscriptions = postgres.NewInscriptionRepository(db)
		logger.Info("using postgres source")
	default:
		client := &http.Client{Timeout: cfg.RequestTimeout}
		a.events = eventapi.NewHTTPLookup(client, cfg.EventServiceURL)
		a.inscriptions = inscriptionapi.NewHTTPService(client, cfg.InscriptionServiceURL)
		logger.Info("using http source", "events", cfg.EventServiceURL, "inscriptions", cfg.InscriptionServiceURL)
	}

	if rdb := config.NewRedisClient(ctx, cfg); rdb != nil {
		a.closers = append(a.closers, rdb.Close)
		a.events = cache.NewCachedEventLookup(a.events, rdb, cfg.EventCacheTTL, logger)
		logger.Info("event cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.EventCacheTTL)
	} else if cfg.RedisAddr != "" {
		logger.Warn("redis unavailable, event cache disabled", "addr", cfg.RedisAddr)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretKey,
			InsecureSkipVerify: cfg.SESInsecureTLS,
		},
	}, logger)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	var publisher domain.CancellationPublisher
	if cfg.RabbitMQURL != "" {
		publisher = queue.NewPublisher(cfg.RabbitMQURL, cfg.RequestTimeout, logger)
	}
	a.notifier = services.NewCancellationNotifier(emailService, publisher, logger)
	return a, nil
}

// detailView builds a view for viewer wired to nav.
func (a *app) detailView(viewer domain.Viewer, nav domain.Navigator) domain.DetailView {
	return services.NewDetailView(services.DetailViewDeps{
		Events:         a.events,
		Inscriptions:   a.inscriptions,
		Navigator:      nav,
		Notifier:       a.notifier,
		Viewer:         viewer,
		JoinRule:       a.joinRule,
		CancelPolicy:   a.cancelPolicy,
		Logger:         a.logger,
		Tracer:         a.tracing.Tracer(),
		RequestTimeout: a.cfg.RequestTimeout,
	})
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
