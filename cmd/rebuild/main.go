package main

import (
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	db "invman/internal/db/query"
	"invman/internal/repository"
	"invman/internal/service"
)

func main() {
	var (
		accountID = flag.Int("account", 0, "account id")
		dryRun    = flag.Bool("dry-run", false, "report drift without writing corrections")
	)
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	dbConn, err := db.New()
	if err != nil {
		log.Fatal(err)
	}
	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}
	defer tx.Rollback()

	holdingsService := service.NewHoldingsService(
		logger,
		repository.NewTransactionLog(),
		repository.NewHoldingStore(),
	)

	corrected, err := holdingsService.Rebuild(tx, int32(*accountID))
	if err != nil {
		log.Fatal(err)
	}

	if *dryRun {
		logger.Info().Int("wouldCorrect", len(corrected)).Msg("dry run, rolling back")
		return
	}

	if err := tx.Commit(); err != nil {
		log.Fatal(err)
	}
	logger.Info().Int("corrected", len(corrected)).Msg("rebuild committed")
}
