package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/housestock/backend/config"
	httpDelivery "github.com/housestock/backend/internal/delivery/http"
	"github.com/housestock/backend/internal/domain"
	"github.com/housestock/backend/internal/extractor"
	"github.com/housestock/backend/internal/infrastructure/cache"
	"github.com/housestock/backend/internal/infrastructure/ratelimit"
	"github.com/housestock/backend/internal/infrastructure/relay"
	"github.com/housestock/backend/internal/infrastructure/store"
	"github.com/housestock/backend/internal/logger"
	"github.com/housestock/backend/internal/metrics"
	"github.com/housestock/backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup("")
		if err != nil {
			return err
		}
		defer logger.Sync()

		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Server.Port = port
		}
		return serve(cmd.Context(), cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "", "Listen port (overrides server.port)")
}

func serve(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	log.Infow("Starting housestock backend",
		"version", httpDelivery.Version,
		"environment", cfg.Server.Environment,
		"database", cfg.Database.Driver,
		"cache", cfg.Cache.Type)

	db, err := openDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	memoryCache := cache.NewMemoryCache(time.Minute)
	defer memoryCache.Close()

	limiter, closeLimiter, err := newRateLimiter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLimiter()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	wines := store.NewWineStore(db)
	pantry := store.NewPantryStore(db)

	handler := httpDelivery.NewHandler(httpDelivery.Services{
		Wines:    usecase.NewWineService(wines),
		Pantry:   usecase.NewPantryService(pantry),
		Shopping: usecase.NewShoppingService(store.NewShoppingStore(db), store.NewPantryShoppingStore(db)),
		Settings: usecase.NewSettingsService(store.NewSettingsStore(db), memoryCache, cfg.Cache.TTL, log),
		Stats:    usecase.NewStatsService(wines, pantry),
		Extraction: usecase.NewExtractionService(
			relay.NewClient(relayConfig(cfg), log),
			extractor.New(),
			m,
			log,
		),
	}, db)

	router := httpDelivery.SetupRouter(httpDelivery.RouterDeps{
		Config:   cfg,
		Handler:  handler,
		Limiter:  limiter,
		Metrics:  m,
		Gatherer: reg,
		Logger:   log,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

// newRateLimiter picks the per-IP limiter backend matching the cache type.
// A zero per_ip limit disables inbound rate limiting.
func newRateLimiter(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (domain.RateLimiter, func(), error) {
	if cfg.RateLimit.PerIP <= 0 {
		return nil, func() {}, nil
	}

	if cfg.Cache.Type == "redis" {
		client, err := ratelimit.NewRedisClient(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("Rate limiting with redis", "per_ip", cfg.RateLimit.PerIP, "window", cfg.RateLimit.Window)
		closer := func() {
			if err := client.Close(); err != nil {
				log.Warnw("Failed to close redis client", "error", err)
			}
		}
		return ratelimit.NewRedisLimiter(client, cfg.RateLimit.PerIP, cfg.RateLimit.Window), closer, nil
	}

	limiter := ratelimit.NewMemoryLimiter(cfg.RateLimit.PerIP, cfg.RateLimit.Window)
	closer := func() { _ = limiter.Close() }
	return limiter, closer, nil
}

func relayConfig(cfg *config.Config) relay.Config {
	return relay.Config{
		RelayURL:          cfg.Extractor.RelayURL,
		Timeout:           cfg.Extractor.Timeout,
		RetryMax:          cfg.Extractor.RetryMax,
		RequestsPerSecond: cfg.Extractor.RateLimit,
		Burst:             1,
		UserAgent:         cfg.Extractor.UserAgent,
	}
}
