package prices

import (
	"time"

	"invman/internal/domain"
)

// QuoteRetriever fetches daily quotes from an external market data source.
// Returned quotes carry no investment ID; the caller maps symbols back to
// its own records.
type QuoteRetriever interface {
	DailyQuotesSince(symbol string, since time.Time) ([]domain.Quote, error)
}
