package repository

import (
	"database/sql"
	"time"

	"invman/internal/db/models/postgres/public/model"
	db "invman/internal/db/query"
	"invman/internal/domain"
)

type QuoteStore interface {
	// Add skips quotes already recorded for the same investment and date.
	Add(tx *sql.Tx, quotes []domain.Quote) ([]domain.Quote, error)
	Latest(tx *sql.Tx, investmentID int32) (*domain.Quote, error)
	ByDate(tx *sql.Tx, investmentID int32, date time.Time) (*domain.Quote, error)
	Since(tx *sql.Tx, investmentID int32, since time.Time) ([]domain.Quote, error)
	MaxDates(tx *sql.Tx) (map[int32]time.Time, error)
}

type quoteStoreHandler struct {
}

func NewQuoteStore() QuoteStore {
	return quoteStoreHandler{}
}

func (h quoteStoreHandler) Add(tx *sql.Tx, quotes []domain.Quote) ([]domain.Quote, error) {
	rows := make([]model.Quote, len(quotes))
	for i, q := range quotes {
		rows[i] = quoteToDb(q)
	}

	// A failed batch aborts the caller's transaction in Postgres; the
	// savepoint lets the caller keep earlier work and move on.
	savepoint, err := db.AddSavepoint(tx)
	if err != nil {
		return nil, err
	}
	inserted, err := db.AddQuotes(tx, rows)
	if err := db.RollbackWithError(tx, savepoint, err); err != nil {
		return nil, err
	}
	return quotesFromDb(inserted), nil
}

func (h quoteStoreHandler) Latest(tx *sql.Tx, investmentID int32) (*domain.Quote, error) {
	row, err := db.GetLatestQuote(tx, investmentID)
	if err != nil {
		return nil, err
	}
	out := quoteFromDb(*row)
	return &out, nil
}

func (h quoteStoreHandler) ByDate(tx *sql.Tx, investmentID int32, date time.Time) (*domain.Quote, error) {
	row, err := db.GetQuoteByDate(tx, investmentID, date)
	if err != nil {
		return nil, err
	}
	out := quoteFromDb(*row)
	return &out, nil
}

func (h quoteStoreHandler) Since(tx *sql.Tx, investmentID int32, since time.Time) ([]domain.Quote, error) {
	rows, err := db.GetQuotesSince(tx, investmentID, since)
	if err != nil {
		return nil, err
	}
	return quotesFromDb(rows), nil
}

func (h quoteStoreHandler) MaxDates(tx *sql.Tx) (map[int32]time.Time, error) {
	return db.GetMaxQuoteDates(tx)
}

func quoteFromDb(m model.Quote) domain.Quote {
	return domain.Quote{
		QuoteID:      &m.QuoteID,
		InvestmentID: m.InvestmentID,
		QuoteDate:    m.QuoteDate,
		Open:         m.Open,
		High:         m.High,
		Low:          m.Low,
		Close:        m.Close,
		Volume:       m.Volume,
	}
}

func quotesFromDb(rows []model.Quote) []domain.Quote {
	out := make([]domain.Quote, len(rows))
	for i, row := range rows {
		out[i] = quoteFromDb(row)
	}
	return out
}

func quoteToDb(q domain.Quote) model.Quote {
	return model.Quote{
		InvestmentID: q.InvestmentID,
		QuoteDate:    q.QuoteDate,
		Open:         q.Open,
		High:         q.High,
		Low:          q.Low,
		Close:        q.Close,
		Volume:       q.Volume,
	}
}
