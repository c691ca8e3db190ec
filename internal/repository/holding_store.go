package repository

import (
	"database/sql"

	"invman/internal/db/models/postgres/public/model"
	db "invman/internal/db/query"
	"invman/internal/domain"

	"github.com/shopspring/decimal"
)

type HoldingStore interface {
	Add(tx *sql.Tx, holding domain.Holding) (*domain.Holding, error)
	Get(tx *sql.Tx, holdingID int32) (*domain.Holding, error)
	// GetForUpdate row-locks the lot until the caller's transaction ends.
	GetForUpdate(tx *sql.Tx, holdingID int32) (*domain.Holding, error)
	OpenForAccount(tx *sql.Tx, accountID int32) ([]domain.Holding, error)
	OpenByInvestment(tx *sql.Tx, investmentID int32) ([]domain.Holding, error)
	OpenForAccountAndInvestment(tx *sql.Tx, accountID, investmentID int32) ([]domain.Holding, error)
	// OpenByInvestmentForUpdate row-locks every open lot of the investment
	// across accounts until the caller's transaction ends.
	OpenByInvestmentForUpdate(tx *sql.Tx, investmentID int32) ([]domain.Holding, error)
	SetQuantity(tx *sql.Tx, holdingID int32, quantity decimal.Decimal) (*domain.Holding, error)
	Delete(tx *sql.Tx, holdingID int32) error
	OpenPositions(tx *sql.Tx, accountID int32) ([]model.VwOpenHolding, error)
}

type holdingStoreHandler struct {
}

func NewHoldingStore() HoldingStore {
	return holdingStoreHandler{}
}

func (h holdingStoreHandler) Add(tx *sql.Tx, holding domain.Holding) (*domain.Holding, error) {
	inserted, err := db.AddHolding(tx, holdingToDb(holding))
	if err != nil {
		return nil, err
	}
	return holdingFromDb(*inserted).Ptr(), nil
}

func (h holdingStoreHandler) Get(tx *sql.Tx, holdingID int32) (*domain.Holding, error) {
	row, err := db.GetHolding(tx, holdingID)
	if err != nil {
		return nil, err
	}
	return holdingFromDb(*row).Ptr(), nil
}

func (h holdingStoreHandler) OpenForAccount(tx *sql.Tx, accountID int32) ([]domain.Holding, error) {
	rows, err := db.GetOpenHoldings(tx, accountID)
	if err != nil {
		return nil, err
	}
	return holdingsFromDb(rows), nil
}

func (h holdingStoreHandler) OpenByInvestment(tx *sql.Tx, investmentID int32) ([]domain.Holding, error) {
	rows, err := db.GetOpenHoldingsByInvestment(tx, investmentID)
	if err != nil {
		return nil, err
	}
	return holdingsFromDb(rows), nil
}

func (h holdingStoreHandler) OpenForAccountAndInvestment(tx *sql.Tx, accountID, investmentID int32) ([]domain.Holding, error) {
	rows, err := db.GetOpenHoldingsByAccountAndInvestment(tx, accountID, investmentID)
	if err != nil {
		return nil, err
	}
	return holdingsFromDb(rows), nil
}

func (h holdingStoreHandler) GetForUpdate(tx *sql.Tx, holdingID int32) (*domain.Holding, error) {
	row, err := db.GetHoldingForUpdate(tx, holdingID)
	if err != nil {
		return nil, err
	}
	return holdingFromDb(*row).Ptr(), nil
}

func (h holdingStoreHandler) OpenByInvestmentForUpdate(tx *sql.Tx, investmentID int32) ([]domain.Holding, error) {
	rows, err := db.GetOpenHoldingsByInvestmentForUpdate(tx, investmentID)
	if err != nil {
		return nil, err
	}
	return holdingsFromDb(rows), nil
}

func (h holdingStoreHandler) SetQuantity(tx *sql.Tx, holdingID int32, quantity decimal.Decimal) (*domain.Holding, error) {
	row, err := db.UpdateHoldingQuantity(tx, holdingID, quantity)
	if err != nil {
		return nil, err
	}
	return holdingFromDb(*row).Ptr(), nil
}

func (h holdingStoreHandler) Delete(tx *sql.Tx, holdingID int32) error {
	return db.DeleteHolding(tx, holdingID)
}

func (h holdingStoreHandler) OpenPositions(tx *sql.Tx, accountID int32) ([]model.VwOpenHolding, error) {
	return db.GetVwOpenHoldings(tx, accountID)
}

func holdingFromDb(m model.Holding) domain.Holding {
	return domain.Holding{
		HoldingID:     &m.HoldingID,
		LotRef:        m.LotRef,
		AccountID:     m.AccountID,
		InvestmentID:  m.InvestmentID,
		Quantity:      m.Quantity,
		PurchasePrice: m.PurchasePrice,
		PurchaseDate:  m.PurchaseDate,
		Bucket:        m.Bucket,
	}
}

func holdingsFromDb(rows []model.Holding) []domain.Holding {
	out := make([]domain.Holding, len(rows))
	for i, row := range rows {
		out[i] = holdingFromDb(row)
	}
	return out
}

func holdingToDb(h domain.Holding) model.Holding {
	m := model.Holding{
		LotRef:        h.LotRef,
		AccountID:     h.AccountID,
		InvestmentID:  h.InvestmentID,
		Quantity:      h.Quantity,
		PurchasePrice: h.PurchasePrice,
		PurchaseDate:  h.PurchaseDate,
		Bucket:        h.Bucket,
	}
	if h.HoldingID != nil {
		m.HoldingID = *h.HoldingID
	}
	return m
}
