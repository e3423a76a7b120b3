package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rakhafdl/goalstore/external/apifootball"
	"github.com/rakhafdl/goalstore/external/footystats"
	"github.com/rakhafdl/goalstore/internal/config"
	"github.com/rakhafdl/goalstore/internal/infrastructure/repository/postgres"
	"github.com/rakhafdl/goalstore/internal/interfaces/httpapi"
	"github.com/rakhafdl/goalstore/internal/observability"
	"github.com/rakhafdl/goalstore/internal/platform/cache"
	"github.com/rakhafdl/goalstore/internal/platform/logging"
	"github.com/rakhafdl/goalstore/internal/platform/resilience"
	"github.com/rakhafdl/goalstore/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// App owns the wired HTTP server plus the shutdown hooks for the
// database handle and the observability backends.
type App struct {
	Server *http.Server
	Logger *logging.Logger

	db       *sqlx.DB
	pprofSrv *http.Server
	cleanups []func(context.Context) error
}

// New builds the full dependency graph from configuration: logging,
// telemetry, the Postgres handle, repositories, services and the HTTP
// router. Partially initialized resources are released on failure.
func New(cfg config.Config, baseLogger *logging.Logger) (*App, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	logger := baseLogger
	if logger == nil {
		logger = logging.NewJSON(cfg.LogLevel)
	}

	a := &App{Logger: logger}

	logger, betterStackShutdown, err := observability.InitBetterStackLogger(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init better stack logger: %w", err)
	}
	a.Logger = logger
	a.cleanups = append(a.cleanups, betterStackShutdown)
	logging.SetDefault(logger)

	uptraceShutdown, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		a.release(context.Background())
		return nil, fmt.Errorf("init uptrace: %w", err)
	}
	a.cleanups = append(a.cleanups, uptraceShutdown)

	pyroscopeStop, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		a.release(context.Background())
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}
	a.cleanups = append(a.cleanups, func(context.Context) error {
		return pyroscopeStop()
	})

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		a.release(context.Background())
		return nil, fmt.Errorf("start pprof server: %w", err)
	}
	a.pprofSrv = pprofSrv

	db, err := otelsqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		a.release(context.Background())
		return nil, fmt.Errorf("connect database: %w", err)
	}
	a.db = db

	teamRepo := postgres.NewTeamRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	fixtureRepo := postgres.NewFixtureRepository(db)
	predictionRepo := postgres.NewPredictionRepository(db)

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	teamSync := usecase.NewTeamSyncService(teamRepo)
	matchSync := usecase.NewMatchSyncService(matchRepo, teamRepo, logger)
	fixtureSync := usecase.NewFixtureSyncService(fixtureRepo)
	predictionSync := usecase.NewPredictionSyncService(predictionRepo)
	matchQuery := usecase.NewMatchQueryService(matchRepo)
	fixtureQuery := usecase.NewFixtureQueryService(fixtureRepo, predictionRepo)
	displaySvc := usecase.NewDisplayService(teamRepo, cacheStore)

	var seasonProvider usecase.SeasonDataProvider
	if cfg.FootyStatsEnabled {
		seasonProvider = footystats.NewClient(footystats.ClientConfig{
			BaseURL:    cfg.FootyStatsBaseURL,
			Key:        cfg.FootyStatsKey,
			Timeout:    cfg.FootyStatsTimeout,
			MaxRetries: cfg.FootyStatsMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FootyStatsCircuitEnabled,
				FailureThreshold: cfg.FootyStatsCircuitFailureCount,
				OpenTimeout:      cfg.FootyStatsCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FootyStatsCircuitHalfOpenMaxReq,
			},
		})
	}

	var fixtureProvider usecase.FixtureDataProvider
	if cfg.APIFootballEnabled {
		fixtureProvider = apifootball.NewClient(apifootball.ClientConfig{
			BaseURL:    cfg.APIFootballBaseURL,
			Key:        cfg.APIFootballKey,
			Timeout:    cfg.APIFootballTimeout,
			MaxRetries: cfg.APIFootballMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.APIFootballCircuitEnabled,
				FailureThreshold: cfg.APIFootballCircuitFailureCount,
				OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxReq,
			},
		})
	}

	dataSync := usecase.NewDataSyncService(
		usecase.DataSyncConfig{
			Enabled:           cfg.FootyStatsEnabled || cfg.APIFootballEnabled,
			PredictionWorkers: cfg.SyncPredictionWorkers,
		},
		seasonProvider,
		fixtureProvider,
		teamSync,
		matchSync,
		fixtureSync,
		predictionSync,
		fixtureQuery,
		logger,
	)

	handler := httpapi.NewHandler(
		teamSync,
		matchSync,
		fixtureSync,
		predictionSync,
		matchQuery,
		fixtureQuery,
		displaySvc,
		dataSync,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

// Shutdown stops the HTTP server, then releases the database handle
// and the observability backends in reverse initialization order.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error

	if a.Server != nil {
		if err := a.Server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
		}
	}
	if err := a.release(ctx); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (a *App) release(ctx context.Context) error {
	var errs []error

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
		a.db = nil
	}
	if a.pprofSrv != nil {
		if err := observability.StopPprofServer(a.pprofSrv, a.Logger, 5*time.Second); err != nil {
			errs = append(errs, fmt.Errorf("stop pprof server: %w", err))
		}
		a.pprofSrv = nil
	}
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		if err := a.cleanups[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.cleanups = nil

	return errors.Join(errs...)
}
