package service

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"invman/internal/db/models/postgres/public/model"
	"invman/internal/domain"
	"invman/internal/repository"

	invman_errors "invman/internal"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func int32Ptr(i int32) *int32 {
	return &i
}

type tradeServiceMocks struct {
	transactions *repository.MockTransactionLog
	holdings     *repository.MockHoldingStore
	accounts     *repository.MockAccountRepository
	investments  *repository.MockInvestmentRepository
}

func newTradeService(t *testing.T) (TradeService, tradeServiceMocks) {
	ctrl := gomock.NewController(t)
	m := tradeServiceMocks{
		transactions: repository.NewMockTransactionLog(ctrl),
		holdings:     repository.NewMockHoldingStore(ctrl),
		accounts:     repository.NewMockAccountRepository(ctrl),
		investments:  repository.NewMockInvestmentRepository(ctrl),
	}
	svc := NewTradeService(zerolog.Nop(), m.transactions, m.holdings, m.accounts, m.investments)
	return svc, m
}

func TestBuy(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("records holding, cash leg, and trade leg", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.accounts.EXPECT().Get(gomock.Any(), int32(1)).Return(&domain.Account{AccountID: int32Ptr(1)}, nil)
		m.investments.EXPECT().Get(gomock.Any(), int32(2)).Return(&domain.Investment{InvestmentID: int32Ptr(2), Symbol: "AAPL"}, nil)

		m.holdings.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, h domain.Holding) (*domain.Holding, error) {
				require.Equal(t, int32(1), h.AccountID)
				require.Equal(t, int32(2), h.InvestmentID)
				require.True(t, dec(10).Equal(h.Quantity))
				require.True(t, dec(150).Equal(h.PurchasePrice))
				h.HoldingID = int32Ptr(77)
				return &h, nil
			})

		m.transactions.EXPECT().Append(gomock.Any(), domain.CashMovement{
			AccountID: 1,
			Amount:    dec(1500),
			Direction: model.CashDirection_Debit,
			Kind:      model.TransactionType_Cash,
			Date:      date,
		}).Return(domain.CashMovement{
			TransactionID: int32Ptr(100),
			AccountID:     1,
			Amount:        dec(1500),
			Direction:     model.CashDirection_Debit,
			Kind:          model.TransactionType_Cash,
			Date:          date,
		}, nil)

		m.transactions.EXPECT().Append(gomock.Any(), domain.Trade{
			AccountID:                   1,
			HoldingID:                   77,
			InvestmentID:                2,
			Action:                      model.TransactionType_Buy,
			Quantity:                    dec(10),
			Price:                       dec(150),
			Date:                        date,
			AssociatedCashTransactionID: int32Ptr(100),
		}).Return(domain.Trade{
			TransactionID:               int32Ptr(101),
			AccountID:                   1,
			HoldingID:                   77,
			InvestmentID:                2,
			Action:                      model.TransactionType_Buy,
			Quantity:                    dec(10),
			Price:                       dec(150),
			Date:                        date,
			AssociatedCashTransactionID: int32Ptr(100),
		}, nil)

		trade, holding, err := svc.Buy(nil, BuyInput{
			AccountID:    1,
			InvestmentID: 2,
			Quantity:     dec(10),
			Price:        dec(150),
			Date:         date,
		})
		require.NoError(t, err)
		require.Equal(t, int32(101), *trade.TransactionID)
		require.Equal(t, int32Ptr(100), trade.AssociatedCashTransactionID)
		require.Equal(t, int32(77), *holding.HoldingID)
	})

	t.Run("rejects non positive quantity", func(t *testing.T) {
		svc, _ := newTradeService(t)

		_, _, err := svc.Buy(nil, BuyInput{AccountID: 1, InvestmentID: 2, Quantity: dec(0), Price: dec(150), Date: date})
		require.ErrorAs(t, err, &invman_errors.ErrInvalidArgument{})
	})

	t.Run("rejects non positive price", func(t *testing.T) {
		svc, _ := newTradeService(t)

		for _, price := range []decimal.Decimal{dec(0), dec(-1)} {
			_, _, err := svc.Buy(nil, BuyInput{AccountID: 1, InvestmentID: 2, Quantity: dec(1), Price: price, Date: date})
			require.ErrorAs(t, err, &invman_errors.ErrInvalidArgument{})
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.accounts.EXPECT().Get(gomock.Any(), int32(9)).Return(nil, invman_errors.ErrNotFound{Entity: "account", ID: 9})

		_, _, err := svc.Buy(nil, BuyInput{AccountID: 9, InvestmentID: 2, Quantity: dec(1), Price: dec(1), Date: date})
		require.ErrorAs(t, err, &invman_errors.ErrNotFound{})
	})
}

func TestBuyBySymbol(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("buys a known symbol", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.investments.EXPECT().GetBySymbol(gomock.Any(), "MSFT").Return(&domain.Investment{InvestmentID: int32Ptr(5), Symbol: "MSFT"}, nil)
		m.accounts.EXPECT().Get(gomock.Any(), int32(1)).Return(&domain.Account{AccountID: int32Ptr(1)}, nil)
		m.investments.EXPECT().Get(gomock.Any(), int32(5)).Return(&domain.Investment{InvestmentID: int32Ptr(5), Symbol: "MSFT"}, nil)
		m.holdings.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, h domain.Holding) (*domain.Holding, error) {
				require.Equal(t, int32(5), h.InvestmentID)
				h.HoldingID = int32Ptr(1)
				return &h, nil
			})
		m.transactions.EXPECT().Append(gomock.Any(), gomock.Any()).Return(domain.CashMovement{TransactionID: int32Ptr(1)}, nil)
		m.transactions.EXPECT().Append(gomock.Any(), gomock.Any()).Return(domain.Trade{TransactionID: int32Ptr(2)}, nil)

		_, _, err := svc.BuyBySymbol(nil, "MSFT", BuyInput{AccountID: 1, Quantity: dec(2), Price: dec(400), Date: date})
		require.NoError(t, err)
	})

	t.Run("registers an unknown symbol on first buy", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.investments.EXPECT().GetBySymbol(gomock.Any(), "NVDA").Return(nil, invman_errors.ErrNotFound{Entity: "investment", Key: "NVDA"})
		m.investments.EXPECT().Add(gomock.Any(), domain.Investment{
			Symbol:         "NVDA",
			CompanyName:    "NVDA",
			InvestmentType: model.InvestmentType_Stock,
		}).Return(&domain.Investment{InvestmentID: int32Ptr(9), Symbol: "NVDA"}, nil)
		m.accounts.EXPECT().Get(gomock.Any(), int32(1)).Return(&domain.Account{AccountID: int32Ptr(1)}, nil)
		m.investments.EXPECT().Get(gomock.Any(), int32(9)).Return(&domain.Investment{InvestmentID: int32Ptr(9), Symbol: "NVDA"}, nil)
		m.holdings.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, h domain.Holding) (*domain.Holding, error) {
				require.Equal(t, int32(9), h.InvestmentID)
				h.HoldingID = int32Ptr(2)
				return &h, nil
			})
		m.transactions.EXPECT().Append(gomock.Any(), gomock.Any()).Return(domain.CashMovement{TransactionID: int32Ptr(3)}, nil)
		m.transactions.EXPECT().Append(gomock.Any(), gomock.Any()).Return(domain.Trade{TransactionID: int32Ptr(4)}, nil)

		_, _, err := svc.BuyBySymbol(nil, "NVDA", BuyInput{AccountID: 1, Quantity: dec(1), Price: dec(900), Date: date})
		require.NoError(t, err)
	})
}

func TestSell(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	holding := domain.Holding{
		HoldingID:     int32Ptr(77),
		AccountID:     1,
		InvestmentID:  2,
		Quantity:      dec(10),
		PurchasePrice: dec(150),
	}
	priorBuy := domain.Trade{
		TransactionID: int32Ptr(101),
		AccountID:     1,
		HoldingID:     77,
		InvestmentID:  2,
		Action:        model.TransactionType_Buy,
		Quantity:      dec(10),
		Price:         dec(150),
	}

	t.Run("decrements the lot and credits cash", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.transactions.EXPECT().Get(gomock.Any(), int32(101)).Return(priorBuy, nil)
		m.holdings.EXPECT().GetForUpdate(gomock.Any(), int32(77)).Return(holding.DeepCopy(), nil)

		remaining := holding.DeepCopy()
		remaining.Quantity = dec(6)
		m.holdings.EXPECT().SetQuantity(gomock.Any(), int32(77), gomock.Any()).DoAndReturn(
			func(_ interface{}, _ int32, quantity decimal.Decimal) (*domain.Holding, error) {
				require.True(t, dec(6).Equal(quantity))
				return remaining, nil
			})

		m.transactions.EXPECT().Append(gomock.Any(), domain.CashMovement{
			AccountID: 1,
			Amount:    dec(640),
			Direction: model.CashDirection_Credit,
			Kind:      model.TransactionType_Cash,
			Date:      date,
		}).Return(domain.CashMovement{TransactionID: int32Ptr(200), AccountID: 1}, nil)

		m.transactions.EXPECT().Append(gomock.Any(), domain.Trade{
			AccountID:                   1,
			HoldingID:                   77,
			InvestmentID:                2,
			Action:                      model.TransactionType_Sell,
			Quantity:                    dec(4),
			Price:                       dec(160),
			Date:                        date,
			AssociatedCashTransactionID: int32Ptr(200),
		}).Return(domain.Trade{TransactionID: int32Ptr(201), HoldingID: 77, Action: model.TransactionType_Sell}, nil)

		_, updated, err := svc.Sell(nil, SellInput{TransactionID: 101, Quantity: dec(4), Price: dec(160), Date: date})
		require.NoError(t, err)
		require.True(t, dec(6).Equal(updated.Quantity))
	})

	t.Run("rejects oversell", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.transactions.EXPECT().Get(gomock.Any(), int32(101)).Return(priorBuy, nil)
		short := holding.DeepCopy()
		short.Quantity = dec(6)
		m.holdings.EXPECT().GetForUpdate(gomock.Any(), int32(77)).Return(short, nil)

		_, _, err := svc.Sell(nil, SellInput{TransactionID: 101, Quantity: dec(7), Price: dec(160), Date: date})

		var insufficientErr invman_errors.ErrInsufficientQuantity
		require.ErrorAs(t, err, &insufficientErr)
		require.True(t, dec(6).Equal(insufficientErr.Available))
		require.True(t, dec(7).Equal(insufficientErr.Requested))
	})

	t.Run("unknown prior transaction", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.transactions.EXPECT().Get(gomock.Any(), int32(404)).Return(nil, invman_errors.ErrNotFound{Entity: "transaction", ID: 404})

		_, _, err := svc.Sell(nil, SellInput{TransactionID: 404, Quantity: dec(1), Price: dec(1), Date: date})
		require.ErrorAs(t, err, &invman_errors.ErrNotFound{})
	})

	t.Run("rejects a prior transaction that is not a trade", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.transactions.EXPECT().Get(gomock.Any(), int32(60)).Return(domain.CashMovement{TransactionID: int32Ptr(60)}, nil)

		_, _, err := svc.Sell(nil, SellInput{TransactionID: 60, Quantity: dec(1), Price: dec(1), Date: date})
		require.ErrorAs(t, err, &invman_errors.ErrInvalidOperation{})
	})
}

func TestDepositWithdraw(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("deposit credits the account", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.accounts.EXPECT().Get(gomock.Any(), int32(1)).Return(&domain.Account{AccountID: int32Ptr(1)}, nil)
		m.transactions.EXPECT().Append(gomock.Any(), domain.CashMovement{
			AccountID: 1,
			Amount:    dec(5000),
			Direction: model.CashDirection_Credit,
			Kind:      model.TransactionType_Cash,
			Date:      date,
		}).Return(domain.CashMovement{TransactionID: int32Ptr(1), Amount: dec(5000), Direction: model.CashDirection_Credit}, nil)

		movement, err := svc.Deposit(nil, 1, dec(5000), date)
		require.NoError(t, err)
		require.Equal(t, model.CashDirection_Credit, movement.Direction)
	})

	t.Run("withdraw debits the account", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.accounts.EXPECT().Get(gomock.Any(), int32(1)).Return(&domain.Account{AccountID: int32Ptr(1)}, nil)
		m.transactions.EXPECT().Append(gomock.Any(), domain.CashMovement{
			AccountID: 1,
			Amount:    dec(200),
			Direction: model.CashDirection_Debit,
			Kind:      model.TransactionType_Cash,
			Date:      date,
		}).Return(domain.CashMovement{TransactionID: int32Ptr(2), Direction: model.CashDirection_Debit}, nil)

		_, err := svc.Withdraw(nil, 1, dec(200), date)
		require.NoError(t, err)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		svc, _ := newTradeService(t)

		_, err := svc.Deposit(nil, 1, dec(0), date)
		require.ErrorAs(t, err, &invman_errors.ErrInvalidArgument{})
	})
}

func TestTransfer(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("writes matched debit and credit legs", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.accounts.EXPECT().Get(gomock.Any(), int32(1)).Return(&domain.Account{AccountID: int32Ptr(1)}, nil)
		m.accounts.EXPECT().Get(gomock.Any(), int32(2)).Return(&domain.Account{AccountID: int32Ptr(2)}, nil)

		m.transactions.EXPECT().Append(gomock.Any(), domain.CashMovement{
			AccountID: 1,
			Amount:    dec(1000),
			Direction: model.CashDirection_Debit,
			Kind:      model.TransactionType_Transfer,
			Date:      date,
		}).Return(domain.CashMovement{TransactionID: int32Ptr(1), AccountID: 1, Amount: dec(1000), Direction: model.CashDirection_Debit, Kind: model.TransactionType_Transfer}, nil)
		m.transactions.EXPECT().Append(gomock.Any(), domain.CashMovement{
			AccountID: 2,
			Amount:    dec(1000),
			Direction: model.CashDirection_Credit,
			Kind:      model.TransactionType_Transfer,
			Date:      date,
		}).Return(domain.CashMovement{TransactionID: int32Ptr(2), AccountID: 2, Amount: dec(1000), Direction: model.CashDirection_Credit, Kind: model.TransactionType_Transfer}, nil)

		debit, credit, err := svc.Transfer(nil, 1, 2, dec(1000), date)
		require.NoError(t, err)
		require.True(t, debit.Signed().Add(credit.Signed()).IsZero())
	})

	t.Run("rejects self transfer", func(t *testing.T) {
		svc, _ := newTradeService(t)

		_, _, err := svc.Transfer(nil, 1, 1, dec(100), date)
		require.ErrorAs(t, err, &invman_errors.ErrInvalidArgument{})
	})
}

func TestRecordDividend(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("attributed to an investment", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.accounts.EXPECT().Get(gomock.Any(), int32(1)).Return(&domain.Account{AccountID: int32Ptr(1)}, nil)
		m.investments.EXPECT().Get(gomock.Any(), int32(2)).Return(&domain.Investment{InvestmentID: int32Ptr(2)}, nil)
		m.transactions.EXPECT().Append(gomock.Any(), domain.CashMovement{
			AccountID:    1,
			Amount:       dec(25.50),
			Direction:    model.CashDirection_Credit,
			Kind:         model.TransactionType_Dividend,
			InvestmentID: int32Ptr(2),
			Date:         date,
		}).Return(domain.CashMovement{TransactionID: int32Ptr(1), Kind: model.TransactionType_Dividend}, nil)

		movement, err := svc.RecordDividend(nil, 1, int32Ptr(2), dec(25.50), date)
		require.NoError(t, err)
		require.Equal(t, model.TransactionType_Dividend, movement.Kind)
	})

	t.Run("without an investment", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.accounts.EXPECT().Get(gomock.Any(), int32(1)).Return(&domain.Account{AccountID: int32Ptr(1)}, nil)
		m.transactions.EXPECT().Append(gomock.Any(), domain.CashMovement{
			AccountID: 1,
			Amount:    dec(12),
			Direction: model.CashDirection_Credit,
			Kind:      model.TransactionType_Dividend,
			Date:      date,
		}).Return(domain.CashMovement{TransactionID: int32Ptr(2), Kind: model.TransactionType_Dividend}, nil)

		movement, err := svc.RecordDividend(nil, 1, nil, dec(12), date)
		require.NoError(t, err)
		require.Equal(t, model.TransactionType_Dividend, movement.Kind)
	})
}

func TestAmendTrade(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	existing := domain.Trade{
		TransactionID: int32Ptr(50),
		AccountID:     1,
		HoldingID:     77,
		InvestmentID:  2,
		Action:        model.TransactionType_Buy,
		Quantity:      dec(10),
		Price:         dec(150),
		Date:          date,
	}

	t.Run("amends quantity and price", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.transactions.EXPECT().Get(gomock.Any(), int32(50)).Return(existing, nil)

		amended := existing
		amended.Quantity = dec(12)
		amended.Price = dec(148)
		m.transactions.EXPECT().AmendTrade(gomock.Any(), amended).Return(&amended, nil)

		out, err := svc.AmendTrade(nil, amended)
		require.NoError(t, err)
		require.True(t, dec(12).Equal(out.Quantity))
	})

	t.Run("rejects changing the trade type", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.transactions.EXPECT().Get(gomock.Any(), int32(50)).Return(existing, nil)

		flipped := existing
		flipped.Action = model.TransactionType_Sell
		_, err := svc.AmendTrade(nil, flipped)
		require.ErrorAs(t, err, &invman_errors.ErrInvalidOperation{})
	})

	t.Run("rejects amending a cash movement", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.transactions.EXPECT().Get(gomock.Any(), int32(60)).Return(domain.CashMovement{TransactionID: int32Ptr(60)}, nil)

		_, err := svc.AmendTrade(nil, domain.Trade{TransactionID: int32Ptr(60), Quantity: dec(1)})
		require.ErrorAs(t, err, &invman_errors.ErrInvalidOperation{})
	})
}

func TestCashBalance(t *testing.T) {
	svc, m := newTradeService(t)

	m.accounts.EXPECT().Get(gomock.Any(), int32(1)).Return(&domain.Account{AccountID: int32Ptr(1)}, nil)
	m.transactions.EXPECT().CashEvents(gomock.Any(), int32(1)).Return([]domain.CashMovement{
		{Amount: dec(5000), Direction: model.CashDirection_Credit},
		{Amount: dec(1500), Direction: model.CashDirection_Debit},
		{Amount: dec(640), Direction: model.CashDirection_Credit},
	}, nil)

	balance, err := svc.CashBalance(nil, 1)
	require.NoError(t, err)
	require.Equal(t, "4140", balance.String())
}

func TestDeleteHolding(t *testing.T) {
	t.Run("deletes an unreferenced holding", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.transactions.EXPECT().CountForHolding(gomock.Any(), int32(77)).Return(int64(0), nil)
		m.holdings.EXPECT().Delete(gomock.Any(), int32(77)).Return(nil)

		require.NoError(t, svc.DeleteHolding(nil, 77))
	})

	t.Run("refuses while transactions reference it", func(t *testing.T) {
		svc, m := newTradeService(t)

		m.transactions.EXPECT().CountForHolding(gomock.Any(), int32(77)).Return(int64(3), nil)

		err := svc.DeleteHolding(nil, 77)
		require.ErrorAs(t, err, &invman_errors.ErrInvalidOperation{})
	})
}
