package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"wanderlust/internal/adapters/feed"
	server "wanderlust/internal/adapters/http_server"
	"wanderlust/internal/adapters/observability"
	redisad "wanderlust/internal/adapters/redis"
	"wanderlust/internal/app"
	"wanderlust/internal/domain"
	"wanderlust/internal/fixtures"
	"wanderlust/internal/shared"
	mysqlrepo "wanderlust/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	var cache *redisad.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := cache.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
		}
		defer cache.Close()
		log.Info().Msg("redis connection ok")
	}

	src, closeSrc := datasetSource(ctx, cfg, cache)
	defer closeSrc()
	ds, err := src.LoadDataset(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("source", string(cfg.FixtureSource)).Msg("load dataset failed")
	}
	svc, err := app.NewServices(ds, cfg.BookingAutoConfirm)
	if err != nil {
		log.Fatal().Err(err).Msg("build services failed")
	}
	log.Info().
		Str("source", string(cfg.FixtureSource)).
		Int("hotels", len(ds.Hotels)).
		Int("rooms", len(ds.Rooms)).
		Int("bookings", len(ds.Bookings)).
		Msg("dataset loaded")

	var slot domain.SessionSlot = app.NewMemorySlot()
	if cache != nil {
		slot = redisad.NewSlot(cache, cfg.SessionKey)
	}
	sess, err := app.NewSessionStore(svc.Users, slot, cfg.DemoPassword, cfg.LoginDelay)
	if err != nil {
		log.Fatal().Err(err).Msg("session store init failed")
	}
	if err := sess.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("session restore failed, starting logged out")
	}

	// http
	srv := server.New(server.Options{
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		TrustProxy:     cfg.TrustProxy,
	})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Catalog:      svc.Catalog,
		Bookings:     svc.Bookings,
		Admin:        svc.Admin,
		Dashboard:    svc.Dashboard,
		Session:      sess,
		LoginLimiter: server.NewIPLimiter(cfg.LoginRPS, cfg.LoginBurst),
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// datasetSource picks where the catalogue comes from. The feed is fronted by
// the Redis cache when one is configured.
func datasetSource(ctx context.Context, cfg shared.Config, cache *redisad.Cache) (domain.DatasetSource, func()) {
	switch cfg.FixtureSource {
	case shared.SourceMySQL:
		db, err := mysqlrepo.Open(ctx, cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("mysql open failed")
		}
		log.Info().Msg("database connection ok")
		return mysqlrepo.New(db), func() { _ = db.Close() }
	case shared.SourceFeed:
		client, err := feed.New(cfg.FeedBase, cfg.FeedKey, cfg.FeedRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize feed client")
		}
		if cache != nil {
			return app.NewCachedSource(client, cache, cfg.CacheTTL), func() {}
		}
		return client, func() {}
	default:
		return fixtures.Embedded{}, func() {}
	}
}
