package service

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"invman/internal/db/models/postgres/public/model"
	"invman/internal/domain"
	"invman/internal/repository"
)

func TestRebuild(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	events := []domain.LedgerEvent{
		domain.Trade{AccountID: 1, HoldingID: 77, InvestmentID: 2, Action: model.TransactionType_Buy, Quantity: dec(10), Price: dec(150), Date: times[0]},
		domain.Trade{AccountID: 1, HoldingID: 77, InvestmentID: 2, Action: model.TransactionType_Sell, Quantity: dec(4), Price: dec(160), Date: times[1]},
	}

	newService := func(t *testing.T) (HoldingsService, *repository.MockTransactionLog, *repository.MockHoldingStore) {
		ctrl := gomock.NewController(t)
		transactions := repository.NewMockTransactionLog(ctrl)
		holdings := repository.NewMockHoldingStore(ctrl)
		return NewHoldingsService(zerolog.Nop(), transactions, holdings), transactions, holdings
	}

	t.Run("corrects drifted quantity", func(t *testing.T) {
		svc, transactions, holdings := newService(t)

		transactions.EXPECT().ForAccount(gomock.Any(), int32(1)).Return(events, nil)
		holdings.EXPECT().Get(gomock.Any(), int32(77)).Return(
			&domain.Holding{HoldingID: int32Ptr(77), AccountID: 1, InvestmentID: 2, Quantity: dec(10)}, nil)
		holdings.EXPECT().SetQuantity(gomock.Any(), int32(77), gomock.Any()).DoAndReturn(
			func(_ interface{}, _ int32, quantity interface{}) (*domain.Holding, error) {
				return &domain.Holding{HoldingID: int32Ptr(77), Quantity: dec(6)}, nil
			})

		corrected, err := svc.Rebuild(nil, 1)
		require.NoError(t, err)
		require.Len(t, corrected, 1)
		require.True(t, dec(6).Equal(corrected[0].Quantity))
	})

	t.Run("consistent store is untouched", func(t *testing.T) {
		svc, transactions, holdings := newService(t)

		transactions.EXPECT().ForAccount(gomock.Any(), int32(1)).Return(events, nil)
		holdings.EXPECT().Get(gomock.Any(), int32(77)).Return(
			&domain.Holding{HoldingID: int32Ptr(77), AccountID: 1, InvestmentID: 2, Quantity: dec(6)}, nil)

		corrected, err := svc.Rebuild(nil, 1)
		require.NoError(t, err)
		require.Empty(t, corrected)
	})
}
