package db

import (
	"database/sql"
	"fmt"
	"time"

	"invman/internal/db/models/postgres/public/model"
	. "invman/internal/db/models/postgres/public/table"
	"invman/internal/db/models/postgres/public/view"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"

	invman_errors "invman/internal"
)

func AddHolding(tx *sql.Tx, holding model.Holding) (*model.Holding, error) {
	holding.CreatedAt = time.Now().UTC()
	holding.ModifiedAt = time.Now().UTC()

	stmt := Holding.INSERT(Holding.MutableColumns).
		MODEL(holding).
		RETURNING(Holding.AllColumns)

	result := model.Holding{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to insert holding: %w", err)
	}

	return &result, nil
}

func GetHolding(tx *sql.Tx, holdingID int32) (*model.Holding, error) {
	stmt := Holding.SELECT(Holding.AllColumns).
		WHERE(Holding.HoldingID.EQ(postgres.Int32(holdingID)))

	result := model.Holding{}
	err := stmt.Query(tx, &result)
	if err == qrm.ErrNoRows {
		return nil, invman_errors.ErrNotFound{Entity: "holding", ID: holdingID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding %d: %w", holdingID, err)
	}

	return &result, nil
}

// GetOpenHoldings returns the account's lots that still carry quantity,
// oldest purchase first.
func GetOpenHoldings(tx *sql.Tx, accountID int32) ([]model.Holding, error) {
	stmt := Holding.SELECT(Holding.AllColumns).
		WHERE(postgres.AND(
			Holding.AccountID.EQ(postgres.Int32(accountID)),
			Holding.Quantity.GT(postgres.Float(0)),
		)).
		ORDER_BY(Holding.PurchaseDate.ASC(), Holding.HoldingID.ASC())

	results := []model.Holding{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get open holdings for account %d: %w", accountID, err)
	}

	return results, nil
}

func GetOpenHoldingsByInvestment(tx *sql.Tx, investmentID int32) ([]model.Holding, error) {
	stmt := Holding.SELECT(Holding.AllColumns).
		WHERE(postgres.AND(
			Holding.InvestmentID.EQ(postgres.Int32(investmentID)),
			Holding.Quantity.GT(postgres.Float(0)),
		)).
		ORDER_BY(Holding.PurchaseDate.ASC(), Holding.HoldingID.ASC())

	results := []model.Holding{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get open holdings for investment %d: %w", investmentID, err)
	}

	return results, nil
}

func GetOpenHoldingsByAccountAndInvestment(tx *sql.Tx, accountID, investmentID int32) ([]model.Holding, error) {
	stmt := Holding.SELECT(Holding.AllColumns).
		WHERE(postgres.AND(
			Holding.AccountID.EQ(postgres.Int32(accountID)),
			Holding.InvestmentID.EQ(postgres.Int32(investmentID)),
			Holding.Quantity.GT(postgres.Float(0)),
		)).
		ORDER_BY(Holding.PurchaseDate.ASC(), Holding.HoldingID.ASC())

	results := []model.Holding{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get open holdings for account %d investment %d: %w", accountID, investmentID, err)
	}

	return results, nil
}

// GetHoldingForUpdate locks the lot's row for the rest of the caller's
// transaction so concurrent sells against it serialize.
func GetHoldingForUpdate(tx *sql.Tx, holdingID int32) (*model.Holding, error) {
	stmt := Holding.SELECT(Holding.AllColumns).
		WHERE(Holding.HoldingID.EQ(postgres.Int32(holdingID))).
		FOR(postgres.UPDATE())

	result := model.Holding{}
	err := stmt.Query(tx, &result)
	if err == qrm.ErrNoRows {
		return nil, invman_errors.ErrNotFound{Entity: "holding", ID: holdingID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock holding %d: %w", holdingID, err)
	}

	return &result, nil
}

// GetOpenHoldingsByInvestmentForUpdate locks every open lot of the
// investment across all accounts, which is the write set of a split.
func GetOpenHoldingsByInvestmentForUpdate(tx *sql.Tx, investmentID int32) ([]model.Holding, error) {
	stmt := Holding.SELECT(Holding.AllColumns).
		WHERE(postgres.AND(
			Holding.InvestmentID.EQ(postgres.Int32(investmentID)),
			Holding.Quantity.GT(postgres.Float(0)),
		)).
		ORDER_BY(Holding.PurchaseDate.ASC(), Holding.HoldingID.ASC()).
		FOR(postgres.UPDATE())

	results := []model.Holding{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to lock holdings for investment %d: %w", investmentID, err)
	}

	return results, nil
}

func UpdateHoldingQuantity(tx *sql.Tx, holdingID int32, quantity decimal.Decimal) (*model.Holding, error) {
	stmt := Holding.UPDATE(Holding.Quantity, Holding.ModifiedAt).
		SET(quantity, time.Now().UTC()).
		WHERE(Holding.HoldingID.EQ(postgres.Int32(holdingID))).
		RETURNING(Holding.AllColumns)

	result := model.Holding{}
	err := stmt.Query(tx, &result)
	if err == qrm.ErrNoRows {
		return nil, invman_errors.ErrNotFound{Entity: "holding", ID: holdingID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update holding %d quantity: %w", holdingID, err)
	}

	return &result, nil
}

func DeleteHolding(tx *sql.Tx, holdingID int32) error {
	stmt := Holding.DELETE().
		WHERE(Holding.HoldingID.EQ(postgres.Int32(holdingID)))

	res, err := stmt.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete holding %d: %w", holdingID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result for holding %d: %w", holdingID, err)
	}
	if rows == 0 {
		return invman_errors.ErrNotFound{Entity: "holding", ID: holdingID}
	}

	return nil
}

func GetVwOpenHoldings(tx *sql.Tx, accountID int32) ([]model.VwOpenHolding, error) {
	v := view.VwOpenHolding
	stmt := v.SELECT(v.AllColumns).
		WHERE(v.AccountID.EQ(postgres.Int32(accountID))).
		ORDER_BY(v.Symbol.ASC(), v.PurchaseDate.ASC())

	results := []model.VwOpenHolding{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get open holding view for account %d: %w", accountID, err)
	}

	return results, nil
}
