package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"invman/internal/db/models/postgres/public/model"
)

// Holding is one purchase lot, not an aggregate position. Several holdings
// for the same account+investment coexist. Quantity is decremented by sells
// and rescaled by splits but must never go negative.
type Holding struct {
	HoldingID     *int32
	LotRef        uuid.UUID
	AccountID     int32
	InvestmentID  int32
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
	Bucket        *model.BucketType
}

func (h Holding) DeepCopy() *Holding {
	out := &Holding{
		LotRef:        h.LotRef,
		AccountID:     h.AccountID,
		InvestmentID:  h.InvestmentID,
		Quantity:      h.Quantity,
		PurchasePrice: h.PurchasePrice,
		PurchaseDate:  h.PurchaseDate,
	}
	if h.HoldingID != nil {
		id := *h.HoldingID
		out.HoldingID = &id
	}
	if h.Bucket != nil {
		b := *h.Bucket
		out.Bucket = &b
	}
	return out
}

func (h Holding) Ptr() *Holding { return &h }

// PurchaseValue is quantity at the lot's original price.
func (h Holding) PurchaseValue() decimal.Decimal {
	return h.Quantity.Mul(h.PurchasePrice)
}
