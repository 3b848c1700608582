package main

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"fewo_booking/internal/adapters/observability"
	redisad "fewo_booking/internal/adapters/redis"
	"fewo_booking/internal/app"
	"fewo_booking/internal/shared"
	mysqlrepo "fewo_booking/internal/storage/mysql"
)

// Seeds the platform config defaults and the amenity catalog. Safe to run
// repeatedly; existing rows win.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	configSvc := app.NewConfigService(repo, cache, cfg.CacheTTL)
	catalogSvc := app.NewCatalogService(repo, repo, cache, cfg.CacheTTL)

	if err := configSvc.EnsureDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("config defaults failed")
	}
	n, err := catalogSvc.SeedAmenities(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("amenity seed failed")
	}
	log.Info().Int("amenities_seeded", n).Msg("seed completed")
}
