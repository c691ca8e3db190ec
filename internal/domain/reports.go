package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoldingSummary aggregates the open lots of one investment within an
// account at the latest available quote.
type HoldingSummary struct {
	InvestmentID  int32
	Symbol        string
	TotalQuantity decimal.Decimal
	CostBasis     decimal.Decimal
	MarketValue   decimal.Decimal
	Change        decimal.Decimal
}

type SectorSummary struct {
	Sector      string
	CostBasis   decimal.Decimal
	MarketValue decimal.Decimal
	Change      decimal.Decimal
}

// RollupPoint is one day of the portfolio valuation series.
type RollupPoint struct {
	Date        time.Time
	MarketValue decimal.Decimal
}

type PortfolioReport struct {
	AccountID   int32
	AsOf        time.Time
	CashBalance decimal.Decimal
	TotalChange decimal.Decimal
	Holdings    []HoldingSummary
}

// SplitPreview pairs the lots as they stand with the lots as they would be
// after applying a split, without persisting anything.
type SplitPreview struct {
	Before []Holding
	After  []Holding
}
