package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "fewo_booking/internal/adapters/http_server"
	"fewo_booking/internal/adapters/observability"
	redisad "fewo_booking/internal/adapters/redis"
	"fewo_booking/internal/app"
	"fewo_booking/internal/shared"
	mysqlrepo "fewo_booking/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(reg)

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	accSvc := app.NewAccommodationService(repo, repo, cache, cfg.CacheTTL)
	bookingSvc := app.NewBookingService(repo, repo)
	availSvc := app.NewAvailabilityService(repo, repo)
	configSvc := app.NewConfigService(repo, cache, cfg.CacheTTL)
	catalogSvc := app.NewCatalogService(repo, repo, cache, cfg.CacheTTL)
	statsSvc := app.NewStatsService(repo)

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Acc:          accSvc,
		Bookings:     bookingSvc,
		Availability: availSvc,
		Config:       configSvc,
		Catalog:      catalogSvc,
		Stats:        statsSvc,
		BookingRPS:   float64(cfg.BookingRPS),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
