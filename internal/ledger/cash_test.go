package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"invman/internal/db/models/postgres/public/model"
	"invman/internal/domain"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func TestCashBalance(t *testing.T) {
	t.Run("empty log is zero", func(t *testing.T) {
		require.True(t, CashBalance(nil).IsZero())
	})

	t.Run("deposits and withdrawals net out", func(t *testing.T) {
		movements := []domain.CashMovement{
			{Amount: dec(5000), Direction: model.CashDirection_Credit, Kind: model.TransactionType_Cash},
			{Amount: dec(1500), Direction: model.CashDirection_Debit, Kind: model.TransactionType_Cash},
			{Amount: dec(25.50), Direction: model.CashDirection_Credit, Kind: model.TransactionType_Dividend},
		}

		require.Equal(t, "3525.5", CashBalance(movements).String())
	})

	t.Run("order does not change the balance", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		movements := make([]domain.CashMovement, 50)
		for i := range movements {
			direction := model.CashDirection_Credit
			if rng.Intn(2) == 0 {
				direction = model.CashDirection_Debit
			}
			movements[i] = domain.CashMovement{
				Amount:    decimal.NewFromInt(int64(rng.Intn(10000))).Div(dec(100)),
				Direction: direction,
				Kind:      model.TransactionType_Cash,
				Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			}
		}

		want := CashBalance(movements)
		for trial := 0; trial < 10; trial++ {
			shuffled := make([]domain.CashMovement, len(movements))
			copy(shuffled, movements)
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			require.True(t, want.Equal(CashBalance(shuffled)))
		}
	})
}
