package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/stallsurvey/internal/adapters/cache"
	"github.com/zatekoja/stallsurvey/internal/adapters/database"
	"github.com/zatekoja/stallsurvey/internal/adapters/events"
	"github.com/zatekoja/stallsurvey/internal/adapters/search"
	"github.com/zatekoja/stallsurvey/internal/api/handlers"
	"github.com/zatekoja/stallsurvey/internal/api/middleware"
	"github.com/zatekoja/stallsurvey/internal/api/routes"
	"github.com/zatekoja/stallsurvey/internal/application/services"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/clients/redis"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/observability"
	"github.com/zatekoja/stallsurvey/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env, cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	if err := database.CreateSchema(ctx, pgClient); err != nil {
		log.Fatal().Err(err).Msg("Failed to create database schema")
	}

	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Redis client")
	}
	defer redisClient.Close()

	cacheProvider := cache.NewRedisAdapter(redisClient)
	eventBus := events.NewRedisEventBus(redisClient)

	var questionSearch repositories.QuestionSearchRepository
	if cfg.Typesense.Enabled {
		tsClient, err := typesense.NewClient(&cfg.Typesense)
		if err != nil {
			log.Warn().Err(err).Msg("Typesense unavailable, question search falls back to substring matching")
		} else if err := tsClient.InitSchema(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Typesense schema, question search falls back to substring matching")
		} else {
			questionSearch = search.NewTypesenseQuestionAdapter(tsClient)
		}
	}

	clock := providers.NewSystemClock(cfg.Survey.Location)

	questionRepo := database.NewQuestionAdapter(pgClient)
	stallRepo := database.NewCachedStallAdapter(database.NewStallAdapter(pgClient), cacheProvider, metrics)
	responseRepo := database.NewResponseAdapter(pgClient)
	userRepo := database.NewUserAdapter(pgClient)

	questionService := services.NewQuestionService(questionRepo, questionSearch, stallRepo, eventBus, clock)
	stallService := services.NewStallService(stallRepo, eventBus, clock)
	surveyService := services.NewSurveyService(questionRepo, responseRepo, stallRepo, eventBus, clock)
	userService := services.NewUserService(userRepo, clock)
	dashboardService := services.NewDashboardService(
		questionRepo, stallRepo, responseRepo, userRepo,
		cacheProvider, clock, cfg.Survey.DashboardCacheTTLSeconds, metrics,
	)

	cacheInvalidationService := services.NewCacheInvalidationService(cacheProvider, eventBus)
	if err := cacheInvalidationService.Start(); err != nil {
		log.Warn().Err(err).Msg("Dashboard cache invalidation disabled")
		cacheInvalidationService = nil
	}

	router := routes.NewRouter(
		handlers.NewUserHandler(userService),
		handlers.NewSurveyHandler(surveyService, stallRepo, metrics),
		handlers.NewQuestionHandler(questionService, stallRepo),
		handlers.NewStallHandler(stallService),
		handlers.NewDashboardHandler(dashboardService, services.NewDashboardSessions(
			time.Duration(cfg.Survey.DashboardSessionIdleSeconds)*time.Second, clock,
		)),
		middleware.NewAuthenticator(cfg.Auth.JWTSecret),
		stallRepo,
		metrics,
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if cacheInvalidationService != nil {
		cacheInvalidationService.Stop()
	}

	if err := eventBus.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing event bus")
	}

	log.Info().Msg("Server stopped")
}
