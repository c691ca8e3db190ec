package ledger

import (
	"invman/internal/domain"

	"github.com/shopspring/decimal"
)

// CashBalance folds cash movements into the account's derived balance.
// Addition commutes, so the result does not depend on event order.
func CashBalance(movements []domain.CashMovement) decimal.Decimal {
	balance := decimal.Zero
	for _, m := range movements {
		balance = balance.Add(m.Signed())
	}
	return balance
}
