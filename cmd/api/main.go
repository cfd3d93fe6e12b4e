package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/arguehive/debatehub-backend/api/routes"
	"github.com/arguehive/debatehub-backend/internal/analytics"
	"github.com/arguehive/debatehub-backend/internal/auth"
	"github.com/arguehive/debatehub-backend/internal/debates"
	"github.com/arguehive/debatehub-backend/internal/hub"
	"github.com/arguehive/debatehub-backend/internal/store"
	"github.com/arguehive/debatehub-backend/internal/topics"
	"github.com/arguehive/debatehub-backend/pkg/config"
	"github.com/arguehive/debatehub-backend/pkg/genai"
	"github.com/arguehive/debatehub-backend/pkg/logger"
	"github.com/arguehive/debatehub-backend/pkg/metrics"
	"github.com/arguehive/debatehub-backend/pkg/redis"
)

const shutdownGrace = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		redisClient = client
	} else {
		logg.Warn(ctx, "redis not configured, auth rate limiting disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	dataStore := store.New()
	roomHub := hub.New(logg, metrics.NewHubMetrics(registry))

	authService, err := auth.NewService(auth.ServiceParams{
		Users:          dataStore,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		return err
	}

	debateService, err := debates.NewService(debates.ServiceParams{
		Debates:   dataStore,
		Generator: genai.NewClient(cfg.Gemini, logg),
		Logger:    logg,
	})
	if err != nil {
		return err
	}

	topicService, err := topics.NewService(dataStore)
	if err != nil {
		return err
	}

	analyticsService, err := analytics.NewService(dataStore)
	if err != nil {
		return err
	}

	if err := auth.SeedAdmin(ctx, dataStore, cfg.Admin, cfg.Password, logg); err != nil {
		return err
	}

	handler := routes.NewRouter(routes.RouterParams{
		Config:           cfg,
		Logger:           logg,
		Store:            dataStore,
		Hub:              roomHub,
		Redis:            redisClient,
		HTTPMetrics:      metrics.NewHTTPMetrics(registry),
		Gatherer:         registry,
		AuthService:      authService,
		DebateService:    debateService,
		TopicService:     topicService,
		AnalyticsService: analyticsService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	startCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(startCtx, "starting api server")

	var errs error
	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = multierr.Append(errs, err)
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
