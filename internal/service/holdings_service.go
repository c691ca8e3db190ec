package service

import (
	"database/sql"

	"github.com/rs/zerolog"

	"invman/internal/domain"
	"invman/internal/ledger"
	"invman/internal/repository"
)

// HoldingsService reconciles stored lot quantities against the event log.
type HoldingsService interface {
	// Rebuild replays the account's log and rewrites any lot whose stored
	// quantity drifted from the replayed value. Running it twice is a no-op.
	Rebuild(tx *sql.Tx, accountID int32) ([]domain.Holding, error)
}

type holdingsServiceHandler struct {
	log          zerolog.Logger
	transactions repository.TransactionLog
	holdings     repository.HoldingStore
}

func NewHoldingsService(
	log zerolog.Logger,
	transactions repository.TransactionLog,
	holdings repository.HoldingStore,
) HoldingsService {
	return holdingsServiceHandler{
		log:          log.With().Str("component", "holdings_service").Logger(),
		transactions: transactions,
		holdings:     holdings,
	}
}

func (h holdingsServiceHandler) Rebuild(tx *sql.Tx, accountID int32) ([]domain.Holding, error) {
	events, err := h.transactions.ForAccount(tx, accountID)
	if err != nil {
		return nil, err
	}

	positions, _ := ledger.Replay(events)

	corrected := []domain.Holding{}
	for holdingID, position := range positions {
		stored, err := h.holdings.Get(tx, holdingID)
		if err != nil {
			return nil, err
		}
		if stored.Quantity.Equal(position.Quantity) {
			continue
		}

		h.log.Warn().
			Int32("holdingID", holdingID).
			Str("stored", stored.Quantity.String()).
			Str("replayed", position.Quantity.String()).
			Msg("holding quantity drifted from log")

		updated, err := h.holdings.SetQuantity(tx, holdingID, position.Quantity)
		if err != nil {
			return nil, err
		}
		corrected = append(corrected, *updated)
	}

	h.log.Info().
		Int32("accountID", accountID).
		Int("events", len(events)).
		Int("corrected", len(corrected)).
		Msg("rebuilt holdings from log")

	return corrected, nil
}
