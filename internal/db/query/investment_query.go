package db

import (
	"database/sql"
	"fmt"
	"time"

	"invman/internal/db/models/postgres/public/model"
	. "invman/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	invman_errors "invman/internal"
)

func AddInvestment(tx *sql.Tx, investment model.Investment) (*model.Investment, error) {
	investment.CreatedAt = time.Now().UTC()
	investment.ModifiedAt = time.Now().UTC()

	stmt := Investment.INSERT(Investment.MutableColumns).
		MODEL(investment).
		RETURNING(Investment.AllColumns)

	result := model.Investment{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to insert investment %s: %w", investment.Symbol, err)
	}

	return &result, nil
}

func GetInvestment(tx *sql.Tx, investmentID int32) (*model.Investment, error) {
	stmt := Investment.SELECT(Investment.AllColumns).
		WHERE(Investment.InvestmentID.EQ(postgres.Int32(investmentID)))

	result := model.Investment{}
	err := stmt.Query(tx, &result)
	if err == qrm.ErrNoRows {
		return nil, invman_errors.ErrNotFound{Entity: "investment", ID: investmentID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get investment %d: %w", investmentID, err)
	}

	return &result, nil
}

func GetInvestmentBySymbol(tx *sql.Tx, symbol string) (*model.Investment, error) {
	stmt := Investment.SELECT(Investment.AllColumns).
		WHERE(Investment.Symbol.EQ(postgres.String(symbol)))

	result := model.Investment{}
	err := stmt.Query(tx, &result)
	if err == qrm.ErrNoRows {
		return nil, invman_errors.ErrNotFound{Entity: "investment", Key: symbol}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get investment %s: %w", symbol, err)
	}

	return &result, nil
}

func UpdateInvestment(tx *sql.Tx, updated model.Investment) (*model.Investment, error) {
	updated.ModifiedAt = time.Now().UTC()

	stmt := Investment.UPDATE(
		Investment.Symbol,
		Investment.CompanyName,
		Investment.Exchange,
		Investment.Sector,
		Investment.InvestmentType,
		Investment.ModifiedAt,
	).
		MODEL(updated).
		WHERE(Investment.InvestmentID.EQ(postgres.Int32(updated.InvestmentID))).
		RETURNING(Investment.AllColumns)

	result := model.Investment{}
	err := stmt.Query(tx, &result)
	if err == qrm.ErrNoRows {
		return nil, invman_errors.ErrNotFound{Entity: "investment", ID: updated.InvestmentID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update investment %d: %w", updated.InvestmentID, err)
	}

	return &result, nil
}

func ListInvestments(tx *sql.Tx) ([]model.Investment, error) {
	stmt := Investment.SELECT(Investment.AllColumns).
		ORDER_BY(Investment.Symbol.ASC())

	results := []model.Investment{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	return results, nil
}
