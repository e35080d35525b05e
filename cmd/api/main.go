package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/justsurfingit/job-portal-api/internal/auth"
	"github.com/justsurfingit/job-portal-api/internal/config"
	"github.com/justsurfingit/job-portal-api/internal/database"
	"github.com/justsurfingit/job-portal-api/internal/handlers"
	"github.com/justsurfingit/job-portal-api/internal/metrics"
	"github.com/justsurfingit/job-portal-api/internal/router"
	"github.com/justsurfingit/job-portal-api/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside development)
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("job portal stopped")
	}
}

// run serves until ctx is cancelled. The server never starts without a store.
func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "job-portal-api").Logger()

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	ln, err := net.Listen("tcp", a.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.srv.Addr, err)
	}
	logger.Info().Str("addr", ln.Addr().String()).Str("env", cfg.Environment).Msg("job portal listening")
	return serve(ctx, a.srv, ln, logger)
}

type app struct {
	srv *http.Server
	db  *gorm.DB
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newApp(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*app, error) {
	// 2. Database Connection
	db, err := database.Connect(ctx, cfg.DBDriver, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to %s store: %w", cfg.DBDriver, err)
	}

	// 3. Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// 4. Core Services
	sessions := auth.NewSessionService(cfg.JWTSecret, auth.WithTTL(cfg.SessionTTL))
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	workflow := services.NewApplicationWorkflow(jobService, applicationService, m)

	var extractor handlers.JobExtractor
	if cfg.GeminiAPIKey != "" {
		llmService, err := services.NewLLMService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn().Err(err).Msg("job extraction disabled")
		} else {
			extractor = llmService
			logger.Info().Str("model", cfg.GeminiModel).Msg("job extraction enabled")
		}
	}

	// 5. Router
	r := router.New(router.Deps{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		CookiePolicy:   auth.CookiePolicy{Production: cfg.Production()},
		Sessions:       sessions,
		Jobs:           jobService,
		Applications:   applicationService,
		Workflow:       workflow,
		Extractor:      extractor,
		Metrics:        m,
		Gatherer:       reg,
		Ping:           func(ctx context.Context) error { return database.Ping(ctx, db) },
	})

	return &app{
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		db: db,
	}, nil
}

// serve blocks until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, logger zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
