package service

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"invman/internal/db/models/postgres/public/model"
	"invman/internal/prices"
	"invman/internal/repository"
)

const defaultQuoteLookback = 30 * 24 * time.Hour

// QuoteSyncService pulls daily quotes from the market data source and
// stores whatever the account universe is missing.
type QuoteSyncService interface {
	UpdateQuotes(tx *sql.Tx) (int, error)
}

type quoteSyncServiceHandler struct {
	log         zerolog.Logger
	investments repository.InvestmentRepository
	quotes      repository.QuoteStore
	retriever   prices.QuoteRetriever
}

func NewQuoteSyncService(
	log zerolog.Logger,
	investments repository.InvestmentRepository,
	quotes repository.QuoteStore,
	retriever prices.QuoteRetriever,
) QuoteSyncService {
	return quoteSyncServiceHandler{
		log:         log.With().Str("component", "quote_sync_service").Logger(),
		investments: investments,
		quotes:      quotes,
		retriever:   retriever,
	}
}

// UpdateQuotes fetches from the day after each investment's newest stored
// quote. Investments never quoted before backfill a fixed lookback window.
func (h quoteSyncServiceHandler) UpdateQuotes(tx *sql.Tx) (int, error) {
	investments, err := h.investments.List(tx)
	if err != nil {
		return 0, err
	}

	maxDates, err := h.quotes.MaxDates(tx)
	if err != nil {
		return 0, err
	}

	stored := 0
	for _, investment := range investments {
		if investment.InvestmentType == model.InvestmentType_Cash {
			continue
		}

		since := time.Now().UTC().Add(-defaultQuoteLookback)
		if maxDate, ok := maxDates[*investment.InvestmentID]; ok {
			since = maxDate.AddDate(0, 0, 1)
		}

		quotes, err := h.retriever.DailyQuotesSince(investment.Symbol, since)
		if err != nil {
			h.log.Error().Err(err).
				Str("symbol", investment.Symbol).
				Msg("failed to fetch quotes")
			return stored, err
		}
		for i := range quotes {
			quotes[i].InvestmentID = *investment.InvestmentID
		}

		inserted, err := h.quotes.Add(tx, quotes)
		if err != nil {
			// the store unwinds the failed batch to a savepoint, so
			// quotes already synced this run are kept
			h.log.Error().Err(err).
				Str("symbol", investment.Symbol).
				Msg("failed to store quotes")
			continue
		}
		stored += len(inserted)

		h.log.Info().
			Str("symbol", investment.Symbol).
			Int("fetched", len(quotes)).
			Int("stored", len(inserted)).
			Msg("synced quotes")
	}

	return stored, nil
}
