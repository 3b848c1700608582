package main

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"fewo_booking/internal/adapters/observability"
	"fewo_booking/internal/app"
	"fewo_booking/internal/domain"
	"fewo_booking/internal/shared"
	mysqlrepo "fewo_booking/internal/storage/mysql"
)

// Completes confirmed bookings whose checkout has passed. Meant to run from
// cron once a day.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.SweepWorkers).
		Msg("sweeper starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	svc := app.NewBookingService(repo, repo)

	ids, err := svc.ExpiredConfirmed(ctx, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("listing expired bookings failed")
	}
	log.Info().Int("count", len(ids)).Msg("expired confirmed bookings found")

	sem := semaphore.NewWeighted(int64(cfg.SweepWorkers))
	var wg sync.WaitGroup

	for _, id := range ids {
		id := id

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(bookingID int64) {
			defer wg.Done()
			defer sem.Release(int64(1))

			if err := svc.UpdateStatus(ctx, domain.System(), bookingID, domain.BookingCompleted, nil); err != nil {
				log.Warn().Int64("id", bookingID).Err(err).Msg("complete failed")
				return
			}
			log.Info().Int64("id", bookingID).Msg("completed")
		}(id)
	}

	wg.Wait()
	log.Info().Msg("sweep completed")
}
