package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"invman/internal/db/models/postgres/public/model"
)

// LedgerEvent is one row of the append-only transaction log, surfaced as a
// tagged variant instead of a sentinel-encoded flat record.
type LedgerEvent interface {
	EventDate() time.Time
	EventAccountID() int32
}

// Trade is a Buy or Sell against a single lot, linked to the cash leg that
// settled it.
type Trade struct {
	TransactionID               *int32
	AccountID                   int32
	HoldingID                   int32
	InvestmentID                int32
	Action                      model.TransactionType
	Quantity                    decimal.Decimal
	Price                       decimal.Decimal
	Date                        time.Time
	AssociatedCashTransactionID *int32
}

func (t Trade) EventDate() time.Time  { return t.Date }
func (t Trade) EventAccountID() int32 { return t.AccountID }

// Notional is quantity times execution price.
func (t Trade) Notional() decimal.Decimal {
	return t.Quantity.Mul(t.Price)
}

// CashMovement covers deposits, withdrawals, transfer legs, and dividend
// payouts. Kind is Cash for plain movements and Dividend for payouts, which
// additionally carry the paying investment.
type CashMovement struct {
	TransactionID *int32
	AccountID     int32
	Amount        decimal.Decimal
	Direction     model.CashDirection
	Kind          model.TransactionType
	InvestmentID  *int32
	Date          time.Time
}

func (c CashMovement) EventDate() time.Time  { return c.Date }
func (c CashMovement) EventAccountID() int32 { return c.AccountID }

// Signed returns the movement's contribution to the cash balance.
func (c CashMovement) Signed() decimal.Decimal {
	if c.Direction == model.CashDirection_Debit {
		return c.Amount.Neg()
	}
	return c.Amount
}

// SplitAdjustment is the audit record written when a corporate action
// rescales a lot. NewQuantity is the lot's quantity after the rescale.
type SplitAdjustment struct {
	TransactionID *int32
	AccountID     int32
	HoldingID     int32
	InvestmentID  int32
	NewQuantity   decimal.Decimal
	Date          time.Time
}

func (s SplitAdjustment) EventDate() time.Time  { return s.Date }
func (s SplitAdjustment) EventAccountID() int32 { return s.AccountID }
