package ledger

import (
	"sort"

	"invman/internal/db/models/postgres/public/model"
	"invman/internal/domain"

	"github.com/shopspring/decimal"
)

// Position is the state a lot should be in after replaying the log.
type Position struct {
	HoldingID int32
	Quantity  decimal.Decimal
}

// Replay derives per-lot quantities and the cash balance from the event log
// alone. Events are replayed in date order with ties broken on insertion
// order, matching how the log is read back.
func Replay(events []domain.LedgerEvent) (map[int32]Position, decimal.Decimal) {
	ordered := make([]domain.LedgerEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].EventDate().Before(ordered[j].EventDate())
	})

	positions := map[int32]Position{}
	cash := decimal.Zero

	for _, e := range ordered {
		switch event := e.(type) {
		case domain.Trade:
			positions[event.HoldingID] = applyTrade(positions[event.HoldingID], event)
		case domain.CashMovement:
			cash = cash.Add(event.Signed())
		case domain.SplitAdjustment:
			p := positions[event.HoldingID]
			p.HoldingID = event.HoldingID
			p.Quantity = event.NewQuantity
			positions[event.HoldingID] = p
		}
	}

	return positions, cash
}

func applyTrade(p Position, t domain.Trade) Position {
	p.HoldingID = t.HoldingID
	switch t.Action {
	case model.TransactionType_Buy, model.TransactionType_ReinvestDividend:
		p.Quantity = p.Quantity.Add(t.Quantity)
	case model.TransactionType_Sell:
		p.Quantity = p.Quantity.Sub(t.Quantity)
	}
	return p
}
