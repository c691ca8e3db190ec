package repository

import (
	"database/sql"
	"fmt"

	"invman/internal/db/models/postgres/public/model"
	db "invman/internal/db/query"
	"invman/internal/domain"

	invman_errors "invman/internal"
)

type InvestmentRepository interface {
	Add(tx *sql.Tx, investment domain.Investment) (*domain.Investment, error)
	Get(tx *sql.Tx, investmentID int32) (*domain.Investment, error)
	GetBySymbol(tx *sql.Tx, symbol string) (*domain.Investment, error)
	List(tx *sql.Tx) ([]domain.Investment, error)
	// Update edits the descriptive fields of an existing investment.
	Update(tx *sql.Tx, investment domain.Investment) (*domain.Investment, error)
}

type investmentRepositoryHandler struct {
}

func NewInvestmentRepository() InvestmentRepository {
	return investmentRepositoryHandler{}
}

func (h investmentRepositoryHandler) Add(tx *sql.Tx, investment domain.Investment) (*domain.Investment, error) {
	inserted, err := db.AddInvestment(tx, model.Investment{
		Symbol:         investment.Symbol,
		CompanyName:    investment.CompanyName,
		Exchange:       investment.Exchange,
		Sector:         investment.Sector,
		InvestmentType: investment.InvestmentType,
	})
	if db.IsDuplicateEntryErr(err) {
		return nil, invman_errors.ErrInvalidOperation{Reason: fmt.Sprintf("investment %s already exists", investment.Symbol)}
	}
	if err != nil {
		return nil, err
	}
	out := investmentFromDb(*inserted)
	return &out, nil
}

func (h investmentRepositoryHandler) Get(tx *sql.Tx, investmentID int32) (*domain.Investment, error) {
	row, err := db.GetInvestment(tx, investmentID)
	if err != nil {
		return nil, err
	}
	out := investmentFromDb(*row)
	return &out, nil
}

func (h investmentRepositoryHandler) GetBySymbol(tx *sql.Tx, symbol string) (*domain.Investment, error) {
	row, err := db.GetInvestmentBySymbol(tx, symbol)
	if err != nil {
		return nil, err
	}
	out := investmentFromDb(*row)
	return &out, nil
}

func (h investmentRepositoryHandler) Update(tx *sql.Tx, investment domain.Investment) (*domain.Investment, error) {
	if investment.InvestmentID == nil {
		return nil, invman_errors.ErrInvalidArgument{Field: "investmentID", Reason: "required to update an investment"}
	}

	row, err := db.UpdateInvestment(tx, model.Investment{
		InvestmentID:   *investment.InvestmentID,
		Symbol:         investment.Symbol,
		CompanyName:    investment.CompanyName,
		Exchange:       investment.Exchange,
		Sector:         investment.Sector,
		InvestmentType: investment.InvestmentType,
	})
	if err != nil {
		return nil, err
	}
	out := investmentFromDb(*row)
	return &out, nil
}

func (h investmentRepositoryHandler) List(tx *sql.Tx) ([]domain.Investment, error) {
	rows, err := db.ListInvestments(tx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Investment, len(rows))
	for i, row := range rows {
		out[i] = investmentFromDb(row)
	}
	return out, nil
}

func investmentFromDb(m model.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:   &m.InvestmentID,
		Symbol:         m.Symbol,
		CompanyName:    m.CompanyName,
		Exchange:       m.Exchange,
		Sector:         m.Sector,
		InvestmentType: m.InvestmentType,
	}
}
