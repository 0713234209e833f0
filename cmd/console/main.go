package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/agroconecta/console/config"
	"github.com/agroconecta/console/internal/adapters/pgstore"
	"github.com/agroconecta/console/internal/adapters/reaper"
	"github.com/agroconecta/console/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting console service",
		"auth_mode", cfg.Auth.Mode,
		"session_store", cfg.Auth.SessionStore,
		"upstream", cfg.Upstream.BaseURL,
		"sso_enabled", cfg.Auth.SSO.Enabled(),
	)

	redisClient, pool, cleanup, err := initInfrastructure(ctx, &cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	sessions, err := bootstrap.BuildSessionStore(ctx, cfg.Auth.SessionStore, redisClient, pool)
	if err != nil {
		return err
	}

	services, err := bootstrap.BuildServices(bootstrap.BuildServicesDeps{
		Config: cfg,
		Auth: bootstrap.AuthServiceDeps{
			Config:   cfg.Auth,
			Sessions: sessions,
			Logger:   logger,
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	server := bootstrap.StartHTTPServer(&bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})

	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	if store, ok := sessions.(*pgstore.SessionStore); ok {
		sweeper, sweepErr := reaper.NewRunner(reaper.RunnerOptions{Store: store, Logger: logger})
		if sweepErr != nil {
			return sweepErr
		}
		go func() {
			if runErr := sweeper.Run(sweepCtx); runErr != nil && !errors.Is(runErr, context.Canceled) {
				logger.ErrorContext(ctx, "session sweeper stopped", "error", runErr)
			}
		}()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	sig := <-stop
	logger.InfoContext(ctx, "shutdown signal received", "signal", sig.String())

	return bootstrap.ShutdownHTTPServer(ctx, server, logger)
}

// initInfrastructure connects only the backends the configured session
// store needs. The returned cleanup closes whatever was opened.
//
//nolint:ireturn // returning redis.UniversalClient keeps the client flavor flexible.
func initInfrastructure(
	ctx context.Context,
	cfg *config.AppConfig,
	logger *slog.Logger,
) (redis.UniversalClient, *pgxpool.Pool, func(), error) {
	var (
		redisClient redis.UniversalClient
		pool        *pgxpool.Pool
		err         error
	)

	switch cfg.Auth.SessionStore {
	case config.SessionStoreRedis:
		redisClient, err = bootstrap.ConnectRedis(ctx, cfg.Redis, logger)
	case config.SessionStorePostgres:
		pool, err = bootstrap.ConnectPostgres(ctx, cfg.Postgres, logger)
	case config.SessionStoreMemory:
		logger.WarnContext(ctx, "in-memory session store selected; sessions do not survive restarts")
	}
	if err != nil {
		return nil, nil, nil, err
	}

	cleanup := func() {
		if redisClient != nil {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}
		if pool != nil {
			pool.Close()
		}
	}
	return redisClient, pool, cleanup, nil
}
