// Command console serves the hotel property-management admin console.
//
// @title        Hotel Console API
// @version      1.0
// @description  Backend for the hotel property-management admin console.
// @BasePath     /
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

	"github.com/rs/zerolog"

	"github.com/hotelops/hotel-console/internal/api"
	"github.com/hotelops/hotel-console/internal/api/handler"
	"github.com/hotelops/hotel-console/internal/api/metrics"
	"github.com/hotelops/hotel-console/internal/api/middleware"
	"github.com/hotelops/hotel-console/internal/core/ports"
	"github.com/hotelops/hotel-console/internal/core/service"
	"github.com/hotelops/hotel-console/internal/infrastructure/crypto"
	consolemongo "github.com/hotelops/hotel-console/internal/infrastructure/db/mongo"
	consoleredis "github.com/hotelops/hotel-console/internal/infrastructure/db/redis"
	"github.com/hotelops/hotel-console/internal/infrastructure/pms"
	"github.com/hotelops/hotel-console/internal/infrastructure/queue"
	"github.com/hotelops/hotel-console/internal/pkg/config"
	"github.com/hotelops/hotel-console/pkg/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	minSweepEvery   = time.Minute
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "hotel-console",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("console stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	rdb, err := consoleredis.Connect(ctx, consoleredis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	mclient, db, err := consolemongo.Connect(ctx, consolemongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mclient.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	sealer, err := crypto.NewSealer(cfg.Session.Secret)
	if err != nil {
		return err
	}

	var store ports.CredentialStore
	switch cfg.Session.Store {
	case config.StoreMongo:
		ms := consolemongo.NewCredentialStore(db, sealer, cfg.Session.StorageTTL)
		if err := ms.EnsureIndexes(ctx); err != nil {
			return err
		}
		store = ms
	default:
		store = consoleredis.NewCredentialStore(rdb, sealer, cfg.Session.StorageTTL)
	}

	backend, err := pms.NewClient(pms.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, logger.Component(log, "pms"))
	if err != nil {
		return err
	}

	auditRepo := consolemongo.NewAuditRepository(db)
	if err := auditRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure audit indexes: %w", err)
	}
	dispatcher := queue.NewDispatcher(cfg.Session.AuditWorkers, service.NewAuditService(auditRepo, log), log)
	auditCtx, stopAudit := context.WithCancel(context.Background())
	dispatcher.Start(auditCtx)

	sessionLog := logger.Component(log, "session")
	registry := service.NewSessionRegistry(func(contextID string) *service.SessionManager {
		return service.NewSessionManager(contextID, backend.Auth(), store, dispatcher, sessionLog)
	}, log, metrics.TrackAuthenticated)

	e := api.NewRouter(api.Deps{
		Log:         logger.Component(log, "http"),
		Backend:     backend,
		Sessions:    registry,
		Submissions: consoleredis.NewSubmitGuard(rdb, cfg.Session.SubmitGuardTTL),
		BrowsingContext: middleware.BrowsingContextConfig{
			Secret: cfg.Session.Secret,
			Secure: cfg.Session.CookieSecure,
			MaxAge: cfg.Session.StorageTTL,
		},
		Readiness: map[string]handler.DependencyCheck{
			"redis":   handler.RedisCheck(rdb),
			"mongodb": handler.MongoCheck(db),
		},
	})

	go sweepIdle(ctx, registry, cfg.Session.IdleTTL, log)

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", backend.BaseURL()).Str("store", cfg.Session.Store).Msg("console listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			stopAudit()
			return fmt.Errorf("http server: %w", err)
		}
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown failed")
	}

	registry.Close()
	stopAudit()
	dispatcher.Wait()
	return nil
}

// sweepIdle evicts in-memory sessions idle for longer than idle until ctx
// is done.
func sweepIdle(ctx context.Context, registry *service.SessionRegistry, idle time.Duration, log zerolog.Logger) {
	every := idle / 2
	if every < minSweepEvery {
		every = minSweepEvery
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := registry.Sweep(idle); n > 0 {
				log.Debug().Int("evicted", n).Int("remaining", registry.Len()).Msg("idle sweep")
			}
		}
	}
}
