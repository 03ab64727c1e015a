package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"wanderlust/internal/adapters/feed"
	"wanderlust/internal/adapters/observability"
	redisad "wanderlust/internal/adapters/redis"
	"wanderlust/internal/app"
	"wanderlust/internal/domain"
	"wanderlust/internal/fixtures"
	"wanderlust/internal/shared"
	mysqlrepo "wanderlust/internal/storage/mysql"
)

func main() {
	fromFeed := flag.Bool("feed", false, "seed from FEED_BASE_URL instead of the embedded fixtures")
	migrateOnly := flag.Bool("migrate-only", false, "apply migrations and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Bool("feed", *fromFeed).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := mysqlrepo.Open(ctx, cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("mysql open failed")
	}
	defer db.Close()
	log.Info().Msg("db ping ok")

	if err := mysqlrepo.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	log.Info().Msg("migrations applied")
	if *migrateOnly {
		return
	}

	var src domain.DatasetSource = fixtures.Embedded{}
	if *fromFeed {
		client, err := feed.New(cfg.FeedBase, cfg.FeedKey, cfg.FeedRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize feed client")
		}
		src = client
	}

	// evict the API's cached feed snapshot once new rows are in place
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	rep, err := app.NewSeedService(src, mysqlrepo.New(db), cache, cfg.SeedWorkers).Seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().
		Int("users", rep.Users).
		Int("hotels", rep.Hotels).
		Int("rooms", rep.Rooms).
		Int("bookings", rep.Bookings).
		Int("staff", rep.Staff).
		Msg("seeding completed")
}
