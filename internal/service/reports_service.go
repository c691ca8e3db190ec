package service

import (
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invman/internal/domain"
	"invman/internal/ledger"
	"invman/internal/repository"

	invman_errors "invman/internal"
)

// ReportsService derives portfolio valuations from open lots and the latest
// recorded quotes. It never writes.
type ReportsService interface {
	TotalChange(tx *sql.Tx, accountID int32) (decimal.Decimal, error)
	HoldingSummaries(tx *sql.Tx, accountID int32) ([]domain.HoldingSummary, error)
	SectorSummaries(tx *sql.Tx, accountID int32) ([]domain.SectorSummary, error)
	// PortfolioRollup produces the valuation series for one symbol, or for
	// every investment when symbol is "all".
	PortfolioRollup(tx *sql.Tx, symbol string, since time.Time) ([]domain.RollupPoint, error)
	Report(tx *sql.Tx, accountID int32) (*domain.PortfolioReport, error)
}

type reportsServiceHandler struct {
	log          zerolog.Logger
	transactions repository.TransactionLog
	holdings     repository.HoldingStore
	investments  repository.InvestmentRepository
	quotes       repository.QuoteStore
}

func NewReportsService(
	log zerolog.Logger,
	transactions repository.TransactionLog,
	holdings repository.HoldingStore,
	investments repository.InvestmentRepository,
	quotes repository.QuoteStore,
) ReportsService {
	return reportsServiceHandler{
		log:          log.With().Str("component", "reports_service").Logger(),
		transactions: transactions,
		holdings:     holdings,
		investments:  investments,
		quotes:       quotes,
	}
}

func (h reportsServiceHandler) TotalChange(tx *sql.Tx, accountID int32) (decimal.Decimal, error) {
	summaries, err := h.HoldingSummaries(tx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, s := range summaries {
		total = total.Add(s.Change)
	}
	return total, nil
}

// latestClose falls back to the lot's purchase price when no quote is
// recorded yet, so a freshly traded symbol values at cost instead of
// failing the report.
func (h reportsServiceHandler) latestClose(tx *sql.Tx, investmentID int32, fallback decimal.Decimal) (decimal.Decimal, error) {
	quote, err := h.quotes.Latest(tx, investmentID)
	var notFound invman_errors.ErrNotFound
	if errors.As(err, &notFound) {
		return fallback, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return quote.Close, nil
}

// HoldingSummaries aggregates the account's open lots per investment at the
// latest recorded close, sorted ascending by change in value. Callers that
// want biggest-gainer-first reverse the slice.
func (h reportsServiceHandler) HoldingSummaries(tx *sql.Tx, accountID int32) ([]domain.HoldingSummary, error) {
	positions, err := h.holdings.OpenPositions(tx, accountID)
	if err != nil {
		return nil, err
	}

	byInvestment := map[int32]*domain.HoldingSummary{}
	order := []int32{}
	for _, p := range positions {
		summary, ok := byInvestment[p.InvestmentID]
		if !ok {
			summary = &domain.HoldingSummary{
				InvestmentID: p.InvestmentID,
				Symbol:       p.Symbol,
			}
			byInvestment[p.InvestmentID] = summary
			order = append(order, p.InvestmentID)
		}
		summary.TotalQuantity = summary.TotalQuantity.Add(p.Quantity)
		summary.CostBasis = summary.CostBasis.Add(p.Quantity.Mul(p.PurchasePrice))
	}

	out := make([]domain.HoldingSummary, 0, len(order))
	for _, investmentID := range order {
		summary := byInvestment[investmentID]

		avgCost := decimal.Zero
		if !summary.TotalQuantity.IsZero() {
			avgCost = summary.CostBasis.Div(summary.TotalQuantity)
		}
		closePrice, err := h.latestClose(tx, investmentID, avgCost)
		if err != nil {
			return nil, err
		}

		summary.MarketValue = summary.TotalQuantity.Mul(closePrice)
		summary.Change = summary.MarketValue.Sub(summary.CostBasis)
		out = append(out, *summary)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Change.LessThan(out[j].Change)
	})
	return out, nil
}

func (h reportsServiceHandler) SectorSummaries(tx *sql.Tx, accountID int32) ([]domain.SectorSummary, error) {
	positions, err := h.holdings.OpenPositions(tx, accountID)
	if err != nil {
		return nil, err
	}

	closeByInvestment := map[int32]decimal.Decimal{}
	bySector := map[string]*domain.SectorSummary{}
	order := []string{}
	for _, p := range positions {
		closePrice, ok := closeByInvestment[p.InvestmentID]
		if !ok {
			closePrice, err = h.latestClose(tx, p.InvestmentID, p.PurchasePrice)
			if err != nil {
				return nil, err
			}
			closeByInvestment[p.InvestmentID] = closePrice
		}

		summary, ok := bySector[p.Sector]
		if !ok {
			summary = &domain.SectorSummary{Sector: p.Sector}
			bySector[p.Sector] = summary
			order = append(order, p.Sector)
		}
		summary.CostBasis = summary.CostBasis.Add(p.Quantity.Mul(p.PurchasePrice))
		summary.MarketValue = summary.MarketValue.Add(p.Quantity.Mul(closePrice))
	}

	out := make([]domain.SectorSummary, 0, len(order))
	for _, sector := range order {
		summary := bySector[sector]
		summary.Change = summary.MarketValue.Sub(summary.CostBasis)
		out = append(out, *summary)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Change.LessThan(out[j].Change)
	})
	return out, nil
}

func (h reportsServiceHandler) PortfolioRollup(tx *sql.Tx, symbol string, since time.Time) ([]domain.RollupPoint, error) {
	var investmentID *int32
	if symbol != "all" {
		investment, err := h.investments.GetBySymbol(tx, symbol)
		if err != nil {
			return nil, err
		}
		investmentID = investment.InvestmentID
	}
	return h.transactions.PortfolioRollup(tx, investmentID, since)
}

func (h reportsServiceHandler) Report(tx *sql.Tx, accountID int32) (*domain.PortfolioReport, error) {
	summaries, err := h.HoldingSummaries(tx, accountID)
	if err != nil {
		return nil, err
	}

	movements, err := h.transactions.CashEvents(tx, accountID)
	if err != nil {
		return nil, err
	}

	totalChange := decimal.Zero
	for _, s := range summaries {
		totalChange = totalChange.Add(s.Change)
	}

	return &domain.PortfolioReport{
		AccountID:   accountID,
		AsOf:        time.Now().UTC(),
		CashBalance: ledger.CashBalance(movements),
		TotalChange: totalChange,
		Holdings:    summaries,
	}, nil
}
