package db

import (
	"database/sql"
	"fmt"
	"time"

	"invman/internal/db/models/postgres/public/model"
	. "invman/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	invman_errors "invman/internal"
)

// AddQuotes inserts daily quotes, skipping any (investment, date) pair that
// is already recorded so re-syncing a window stays idempotent.
func AddQuotes(tx *sql.Tx, quotes []model.Quote) ([]model.Quote, error) {
	if len(quotes) == 0 {
		return nil, nil
	}
	for i := range quotes {
		quotes[i].CreatedAt = time.Now().UTC()
	}

	stmt := Quote.INSERT(Quote.MutableColumns).
		MODELS(quotes).
		ON_CONFLICT(Quote.InvestmentID, Quote.QuoteDate).
		DO_NOTHING().
		RETURNING(Quote.AllColumns)

	result := []model.Quote{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to insert quotes: %w", err)
	}

	return result, nil
}

func GetLatestQuote(tx *sql.Tx, investmentID int32) (*model.Quote, error) {
	stmt := Quote.SELECT(Quote.AllColumns).
		WHERE(Quote.InvestmentID.EQ(postgres.Int32(investmentID))).
		ORDER_BY(Quote.QuoteDate.DESC()).
		LIMIT(1)

	result := model.Quote{}
	err := stmt.Query(tx, &result)
	if err == qrm.ErrNoRows {
		return nil, invman_errors.ErrNotFound{Entity: "quote", ID: investmentID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest quote for investment %d: %w", investmentID, err)
	}

	return &result, nil
}

func GetQuoteByDate(tx *sql.Tx, investmentID int32, date time.Time) (*model.Quote, error) {
	stmt := Quote.SELECT(Quote.AllColumns).
		WHERE(postgres.AND(
			Quote.InvestmentID.EQ(postgres.Int32(investmentID)),
			Quote.QuoteDate.EQ(postgres.TimestampzT(date)),
		))

	result := model.Quote{}
	err := stmt.Query(tx, &result)
	if err == qrm.ErrNoRows {
		return nil, invman_errors.ErrNotFound{Entity: "quote", ID: investmentID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for investment %d on %s: %w", investmentID, date, err)
	}

	return &result, nil
}

func GetQuotesSince(tx *sql.Tx, investmentID int32, since time.Time) ([]model.Quote, error) {
	stmt := Quote.SELECT(Quote.AllColumns).
		WHERE(postgres.AND(
			Quote.InvestmentID.EQ(postgres.Int32(investmentID)),
			Quote.QuoteDate.GT_EQ(postgres.TimestampzT(since)),
		)).
		ORDER_BY(Quote.QuoteDate.ASC())

	results := []model.Quote{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotes for investment %d: %w", investmentID, err)
	}

	return results, nil
}

// GetMaxQuoteDates returns the most recent recorded quote date per
// investment, used to pick the sync window.
func GetMaxQuoteDates(tx *sql.Tx) (map[int32]time.Time, error) {
	stmt := Quote.SELECT(
		Quote.InvestmentID,
		postgres.Raw("MAX(quote.quote_date)"),
	).GROUP_BY(Quote.InvestmentID)

	query, args := stmt.Sql()
	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query max quote dates: %w", err)
	}
	defer rows.Close()

	out := map[int32]time.Time{}
	for rows.Next() {
		var investmentID int32
		var maxDate time.Time
		if err := rows.Scan(&investmentID, &maxDate); err != nil {
			return nil, fmt.Errorf("failed to scan max quote date: %w", err)
		}
		out[investmentID] = maxDate
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read max quote dates: %w", err)
	}

	return out, nil
}
