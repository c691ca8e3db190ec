package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Quote struct {
	QuoteID      *int32
	InvestmentID int32
	QuoteDate    time.Time
	Open         decimal.Decimal
	High         decimal.Decimal
	Low          decimal.Decimal
	Close        decimal.Decimal
	Volume       int64
}
