package main

import (
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	db "invman/internal/db/query"
	"invman/internal/prices"
	"invman/internal/repository"
	"invman/internal/service"
	"invman/internal/util"
)

func main() {
	once := flag.Bool("once", false, "sync once and exit instead of running on a schedule")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	config, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	apiKey, err := config.RequireAlphaVantageKey()
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := db.New()
	if err != nil {
		log.Fatal(err)
	}

	quoteSyncService := service.NewQuoteSyncService(
		logger,
		repository.NewInvestmentRepository(),
		repository.NewQuoteStore(),
		prices.NewAlphaVantageClient(apiKey),
	)

	sync := func() {
		tx, err := dbConn.Begin()
		if err != nil {
			logger.Error().Err(err).Msg("failed to open tx")
			return
		}
		defer tx.Rollback()

		stored, err := quoteSyncService.UpdateQuotes(tx)
		if err != nil {
			logger.Error().Err(err).Msg("quote sync failed")
			return
		}
		if err := tx.Commit(); err != nil {
			logger.Error().Err(err).Msg("failed to commit quote sync")
			return
		}
		logger.Info().Int("stored", stored).Msg("quote sync complete")
	}

	if *once {
		sync()
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(config.QuoteSyncSchedule, sync); err != nil {
		log.Fatal(err)
	}
	logger.Info().Str("schedule", config.QuoteSyncSchedule).Msg("quote sync scheduled")
	c.Run()
}
