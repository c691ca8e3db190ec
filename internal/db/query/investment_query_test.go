package db

import (
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"invman/internal/db/models/postgres/public/model"

	invman_errors "invman/internal"
)

func TestInvestmentQueries(t *testing.T) {
	t.Run("update edits the descriptive fields", func(t *testing.T) {
		tx := newTestTx(t)
		investment := seedInvestment(t, tx, "FB")

		investment.Symbol = "META"
		investment.CompanyName = "Meta Platforms Inc"
		investment.Sector = "Communication Services"

		updated, err := UpdateInvestment(tx.tx, investment)
		require.NoError(t, err)
		require.Equal(t, investment.InvestmentID, updated.InvestmentID)
		require.Equal(t, "META", updated.Symbol)
		require.Equal(t, "Meta Platforms Inc", updated.CompanyName)
		require.Equal(t, "Communication Services", updated.Sector)

		fetched, err := GetInvestmentBySymbol(tx.tx, "META")
		require.NoError(t, err)
		require.Equal(t, investment.InvestmentID, fetched.InvestmentID)
	})

	t.Run("update of an unknown investment is not found", func(t *testing.T) {
		tx := newTestTx(t)
		investment := seedInvestment(t, tx, "AAPL")

		investment.InvestmentID = investment.InvestmentID + 1000
		_, err := UpdateInvestment(tx.tx, investment)
		require.ErrorAs(t, err, &invman_errors.ErrNotFound{})
	})

	t.Run("a duplicate symbol rolls back to the savepoint", func(t *testing.T) {
		tx := newTestTx(t)
		seedInvestment(t, tx, "GOOG")

		savepoint, err := AddSavepoint(tx.tx)
		require.NoError(t, err)

		_, err = AddInvestment(tx.tx, model.Investment{
			Symbol:         "GOOG",
			CompanyName:    "Alphabet Inc",
			InvestmentType: model.InvestmentType_Stock,
		})
		require.True(t, IsDuplicateEntryErr(err))

		// the transaction stays usable after unwinding the failed insert
		require.NoError(t, RollbackToSavepoint(tx.tx, savepoint))
		investments, err := ListInvestments(tx.tx)
		require.NoError(t, err)
		require.Len(t, investments, 1)
	})
}
