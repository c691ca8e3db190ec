package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"invman/internal/db/models/postgres/public/model"

	invman_errors "invman/internal"
)

func TestTransactionQueries(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("append and read back in event order", func(t *testing.T) {
		tx := newTestTx(t)
		account := seedAccount(t, tx)
		investment := seedInvestment(t, tx, "AAPL")

		holding, err := AddHolding(tx.tx, model.Holding{
			LotRef:        uuid.New(),
			AccountID:     account.AccountID,
			InvestmentID:  investment.InvestmentID,
			Quantity:      dec(10),
			PurchasePrice: dec(150),
			PurchaseDate:  date,
		})
		require.NoError(t, err)

		direction := model.CashDirection_Debit
		cashLeg, err := AddTransaction(tx.tx, model.Transaction{
			AccountID:       account.AccountID,
			TransactionType: model.TransactionType_Cash,
			Quantity:        dec(1500),
			Direction:       &direction,
			TransactionDate: date,
		})
		require.NoError(t, err)

		price := dec(150)
		_, err = AddTransaction(tx.tx, model.Transaction{
			AccountID:                   account.AccountID,
			HoldingID:                   &holding.HoldingID,
			InvestmentID:                &investment.InvestmentID,
			TransactionType:             model.TransactionType_Buy,
			Quantity:                    dec(10),
			Price:                       &price,
			AssociatedCashTransactionID: &cashLeg.TransactionID,
			TransactionDate:             date.Add(time.Hour),
		})
		require.NoError(t, err)

		rows, err := GetTransactionsForAccount(tx.tx, account.AccountID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, model.TransactionType_Cash, rows[0].TransactionType)
		require.Equal(t, model.TransactionType_Buy, rows[1].TransactionType)
		require.Equal(t, cashLeg.TransactionID, *rows[1].AssociatedCashTransactionID)

		count, err := CountTransactionsByHolding(tx.tx, holding.HoldingID)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
	})

	t.Run("filters by date range and by investment plus type", func(t *testing.T) {
		tx := newTestTx(t)
		account := seedAccount(t, tx)
		investment := seedInvestment(t, tx, "VOO")

		holding, err := AddHolding(tx.tx, model.Holding{
			LotRef:        uuid.New(),
			AccountID:     account.AccountID,
			InvestmentID:  investment.InvestmentID,
			Quantity:      dec(5),
			PurchasePrice: dec(400),
			PurchaseDate:  date,
		})
		require.NoError(t, err)

		price := dec(400)
		for _, day := range []time.Time{date, date.AddDate(0, 1, 0)} {
			_, err := AddTransaction(tx.tx, model.Transaction{
				AccountID:       account.AccountID,
				HoldingID:       &holding.HoldingID,
				InvestmentID:    &investment.InvestmentID,
				TransactionType: model.TransactionType_Buy,
				Quantity:        dec(5),
				Price:           &price,
				TransactionDate: day,
			})
			require.NoError(t, err)
		}

		inMarch, err := GetTransactionsForAccountBetween(tx.tx, account.AccountID, date, date.AddDate(0, 0, 10))
		require.NoError(t, err)
		require.Len(t, inMarch, 1)
		require.True(t, inMarch[0].TransactionDate.Equal(date))

		buys, err := GetTransactionsByInvestmentAndType(tx.tx, investment.InvestmentID, model.TransactionType_Buy)
		require.NoError(t, err)
		require.Len(t, buys, 2)

		sells, err := GetTransactionsByInvestmentAndType(tx.tx, investment.InvestmentID, model.TransactionType_Sell)
		require.NoError(t, err)
		require.Empty(t, sells)
	})

	t.Run("rollup values bought quantity at each close", func(t *testing.T) {
		tx := newTestTx(t)
		account := seedAccount(t, tx)
		investment := seedInvestment(t, tx, "SPY")

		holding, err := AddHolding(tx.tx, model.Holding{
			LotRef:        uuid.New(),
			AccountID:     account.AccountID,
			InvestmentID:  investment.InvestmentID,
			Quantity:      dec(2),
			PurchasePrice: dec(500),
			PurchaseDate:  date,
		})
		require.NoError(t, err)

		price := dec(500)
		_, err = AddTransaction(tx.tx, model.Transaction{
			AccountID:       account.AccountID,
			HoldingID:       &holding.HoldingID,
			InvestmentID:    &investment.InvestmentID,
			TransactionType: model.TransactionType_Buy,
			Quantity:        dec(2),
			Price:           &price,
			TransactionDate: date,
		})
		require.NoError(t, err)

		quoteDate := date.AddDate(0, 0, 3)
		_, err = AddQuotes(tx.tx, []model.Quote{
			{
				InvestmentID: investment.InvestmentID,
				QuoteDate:    quoteDate,
				Open:         dec(508),
				High:         dec(512),
				Low:          dec(505),
				Close:        dec(510),
				Volume:       1000,
			},
			{
				InvestmentID: investment.InvestmentID,
				QuoteDate:    date.AddDate(0, 0, -1),
				Open:         dec(498),
				High:         dec(501),
				Low:          dec(497),
				Close:        dec(499),
				Volume:       900,
			},
		})
		require.NoError(t, err)

		// every quote date of the investment is valued, including dates
		// before the trade
		points, err := GetPortfolioRollup(tx.tx, &investment.InvestmentID, date.AddDate(0, 0, -1))
		require.NoError(t, err)
		require.Len(t, points, 2)
		require.True(t, dec(998).Equal(points[0].MarketValue))
		require.True(t, points[1].QuoteDate.Equal(quoteDate))
		require.True(t, dec(1020).Equal(points[1].MarketValue))
	})

	t.Run("missing transaction reports not found", func(t *testing.T) {
		tx := newTestTx(t)

		_, err := GetTransaction(tx.tx, -1)
		require.ErrorAs(t, err, &invman_errors.ErrNotFound{})
	})

	t.Run("cash filter excludes trades", func(t *testing.T) {
		tx := newTestTx(t)
		account := seedAccount(t, tx)
		investment := seedInvestment(t, tx, "VTI")

		holding, err := AddHolding(tx.tx, model.Holding{
			LotRef:        uuid.New(),
			AccountID:     account.AccountID,
			InvestmentID:  investment.InvestmentID,
			Quantity:      dec(1),
			PurchasePrice: dec(200),
			PurchaseDate:  date,
		})
		require.NoError(t, err)

		credit := model.CashDirection_Credit
		_, err = AddTransaction(tx.tx, model.Transaction{
			AccountID:       account.AccountID,
			TransactionType: model.TransactionType_Cash,
			Quantity:        dec(5000),
			Direction:       &credit,
			TransactionDate: date,
		})
		require.NoError(t, err)

		price := dec(200)
		_, err = AddTransaction(tx.tx, model.Transaction{
			AccountID:       account.AccountID,
			HoldingID:       &holding.HoldingID,
			InvestmentID:    &investment.InvestmentID,
			TransactionType: model.TransactionType_Buy,
			Quantity:        dec(1),
			Price:           &price,
			TransactionDate: date,
		})
		require.NoError(t, err)

		rows, err := GetCashTransactionsForAccount(tx.tx, account.AccountID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, model.TransactionType_Cash, rows[0].TransactionType)
	})
}

func TestQuoteQueries(t *testing.T) {
	t.Run("re-inserting the same quote date is skipped", func(t *testing.T) {
		tx := newTestTx(t)
		seedAccount(t, tx)
		investment := seedInvestment(t, tx, "AAPL")

		day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		quote := model.Quote{
			InvestmentID: investment.InvestmentID,
			QuoteDate:    day,
			Open:         dec(184),
			High:         dec(186),
			Low:          dec(183),
			Close:        dec(185),
			Volume:       1000,
		}

		inserted, err := AddQuotes(tx.tx, []model.Quote{quote})
		require.NoError(t, err)
		require.Len(t, inserted, 1)

		again, err := AddQuotes(tx.tx, []model.Quote{quote})
		require.NoError(t, err)
		require.Empty(t, again)

		latest, err := GetLatestQuote(tx.tx, investment.InvestmentID)
		require.NoError(t, err)
		require.True(t, dec(185).Equal(latest.Close))

		byDate, err := GetQuoteByDate(tx.tx, investment.InvestmentID, day)
		require.NoError(t, err)
		require.True(t, dec(185).Equal(byDate.Close))

		_, err = GetQuoteByDate(tx.tx, investment.InvestmentID, day.AddDate(0, 0, 1))
		require.ErrorAs(t, err, &invman_errors.ErrNotFound{})

		maxDates, err := GetMaxQuoteDates(tx.tx)
		require.NoError(t, err)
		require.True(t, maxDates[investment.InvestmentID].Equal(day))
	})
}
