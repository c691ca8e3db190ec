package ledger

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"invman/internal/db/models/postgres/public/model"
	"invman/internal/domain"
)

func TestReplay(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	}

	t.Run("buy then sell leaves the remainder", func(t *testing.T) {
		events := []domain.LedgerEvent{
			domain.CashMovement{
				AccountID: 1,
				Amount:    dec(5000),
				Direction: model.CashDirection_Credit,
				Kind:      model.TransactionType_Cash,
				Date:      times[0],
			},
			domain.Trade{
				AccountID: 1,
				HoldingID: 10,
				Action:    model.TransactionType_Buy,
				Quantity:  dec(10),
				Price:     dec(150),
				Date:      times[1],
			},
			domain.CashMovement{
				AccountID: 1,
				Amount:    dec(1500),
				Direction: model.CashDirection_Debit,
				Kind:      model.TransactionType_Cash,
				Date:      times[1],
			},
			domain.Trade{
				AccountID: 1,
				HoldingID: 10,
				Action:    model.TransactionType_Sell,
				Quantity:  dec(4),
				Price:     dec(160),
				Date:      times[2],
			},
			domain.CashMovement{
				AccountID: 1,
				Amount:    dec(640),
				Direction: model.CashDirection_Credit,
				Kind:      model.TransactionType_Cash,
				Date:      times[2],
			},
		}

		positions, cash := Replay(events)

		require.Len(t, positions, 1)
		require.True(t, dec(6).Equal(positions[10].Quantity))
		require.True(t, dec(4140).Equal(cash))
	})

	t.Run("split overrides the running quantity", func(t *testing.T) {
		events := []domain.LedgerEvent{
			domain.Trade{
				AccountID: 1,
				HoldingID: 10,
				Action:    model.TransactionType_Buy,
				Quantity:  dec(6),
				Price:     dec(150),
				Date:      times[0],
			},
			domain.SplitAdjustment{
				AccountID:   1,
				HoldingID:   10,
				NewQuantity: dec(12),
				Date:        times[1],
			},
		}

		positions, _ := Replay(events)
		require.True(t, dec(12).Equal(positions[10].Quantity))
	})

	t.Run("out of order input replays by date", func(t *testing.T) {
		events := []domain.LedgerEvent{
			domain.SplitAdjustment{AccountID: 1, HoldingID: 7, NewQuantity: dec(20), Date: times[3]},
			domain.Trade{AccountID: 1, HoldingID: 7, Action: model.TransactionType_Buy, Quantity: dec(10), Price: dec(5), Date: times[0]},
			domain.Trade{AccountID: 1, HoldingID: 7, Action: model.TransactionType_Sell, Quantity: dec(3), Price: dec(6), Date: times[1]},
		}

		positions, _ := Replay(events)
		require.Equal(t, "", cmp.Diff("20", positions[7].Quantity.String()))
	})
}
