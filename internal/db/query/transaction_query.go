package db

import (
	"database/sql"
	"fmt"
	"time"

	"invman/internal/db/models/postgres/public/model"
	. "invman/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"

	invman_errors "invman/internal"
)

func AddTransaction(tx *sql.Tx, txn model.Transaction) (*model.Transaction, error) {
	txn.CreatedAt = time.Now().UTC()
	txn.ModifiedAt = time.Now().UTC()

	stmt := Transaction.INSERT(Transaction.MutableColumns).
		MODEL(txn).
		RETURNING(Transaction.AllColumns)

	result := model.Transaction{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to insert %s transaction: %w", txn.TransactionType, err)
	}

	return &result, nil
}

func GetTransaction(tx *sql.Tx, transactionID int32) (*model.Transaction, error) {
	stmt := Transaction.SELECT(Transaction.AllColumns).
		WHERE(Transaction.TransactionID.EQ(postgres.Int32(transactionID)))

	result := model.Transaction{}
	err := stmt.Query(tx, &result)
	if err == qrm.ErrNoRows {
		return nil, invman_errors.ErrNotFound{Entity: "transaction", ID: transactionID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %d: %w", transactionID, err)
	}

	return &result, nil
}

// GetTransactionsForAccount returns the account's full log in event order.
// Ties on transaction_date break on insertion order.
func GetTransactionsForAccount(tx *sql.Tx, accountID int32) ([]model.Transaction, error) {
	stmt := Transaction.SELECT(Transaction.AllColumns).
		WHERE(Transaction.AccountID.EQ(postgres.Int32(accountID))).
		ORDER_BY(Transaction.TransactionDate.ASC(), Transaction.TransactionID.ASC())

	results := []model.Transaction{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for account %d: %w", accountID, err)
	}

	return results, nil
}

func GetTransactionsForAccountBetween(tx *sql.Tx, accountID int32, from, to time.Time) ([]model.Transaction, error) {
	stmt := Transaction.SELECT(Transaction.AllColumns).
		WHERE(postgres.AND(
			Transaction.AccountID.EQ(postgres.Int32(accountID)),
			Transaction.TransactionDate.GT_EQ(postgres.TimestampzT(from)),
			Transaction.TransactionDate.LT_EQ(postgres.TimestampzT(to)),
		)).
		ORDER_BY(Transaction.TransactionDate.ASC(), Transaction.TransactionID.ASC())

	results := []model.Transaction{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for account %d between %s and %s: %w", accountID, from, to, err)
	}

	return results, nil
}

func GetTransactionsByInvestmentAndType(tx *sql.Tx, investmentID int32, transactionType model.TransactionType) ([]model.Transaction, error) {
	stmt := Transaction.SELECT(Transaction.AllColumns).
		WHERE(postgres.AND(
			Transaction.InvestmentID.EQ(postgres.Int32(investmentID)),
			Transaction.TransactionType.EQ(postgres.NewEnumValue(transactionType.String())),
		)).
		ORDER_BY(Transaction.TransactionDate.ASC(), Transaction.TransactionID.ASC())

	results := []model.Transaction{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s transactions for investment %d: %w", transactionType, investmentID, err)
	}

	return results, nil
}

func GetTransactionsByHolding(tx *sql.Tx, holdingID int32) ([]model.Transaction, error) {
	stmt := Transaction.SELECT(Transaction.AllColumns).
		WHERE(Transaction.HoldingID.EQ(postgres.Int32(holdingID))).
		ORDER_BY(Transaction.TransactionDate.ASC(), Transaction.TransactionID.ASC())

	results := []model.Transaction{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for holding %d: %w", holdingID, err)
	}

	return results, nil
}

// GetCashTransactionsForAccount returns every row with a cash direction,
// which is the entire input to the derived cash balance.
func GetCashTransactionsForAccount(tx *sql.Tx, accountID int32) ([]model.Transaction, error) {
	stmt := Transaction.SELECT(Transaction.AllColumns).
		WHERE(postgres.AND(
			Transaction.AccountID.EQ(postgres.Int32(accountID)),
			Transaction.Direction.IS_NOT_NULL(),
		)).
		ORDER_BY(Transaction.TransactionDate.ASC(), Transaction.TransactionID.ASC())

	results := []model.Transaction{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get cash transactions for account %d: %w", accountID, err)
	}

	return results, nil
}

func UpdateTransaction(tx *sql.Tx, updated model.Transaction, columns postgres.ColumnList) (*model.Transaction, error) {
	updated.ModifiedAt = time.Now().UTC()
	columns = append(columns, Transaction.ModifiedAt)

	stmt := Transaction.UPDATE(columns).
		MODEL(updated).
		WHERE(Transaction.TransactionID.EQ(postgres.Int32(updated.TransactionID))).
		RETURNING(Transaction.AllColumns)

	result := model.Transaction{}
	err := stmt.Query(tx, &result)
	if err == qrm.ErrNoRows {
		return nil, invman_errors.ErrNotFound{Entity: "transaction", ID: updated.TransactionID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction %d: %w", updated.TransactionID, err)
	}

	return &result, nil
}

func CountTransactionsByHolding(tx *sql.Tx, holdingID int32) (int64, error) {
	stmt := Transaction.SELECT(postgres.COUNT(Transaction.TransactionID)).
		WHERE(Transaction.HoldingID.EQ(postgres.Int32(holdingID)))

	query, args := stmt.Sql()
	row := tx.QueryRow(query, args...)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions for holding %d: %w", holdingID, err)
	}

	return count, nil
}

type RollupRow struct {
	QuoteDate   time.Time
	MarketValue decimal.Decimal
}

// GetPortfolioRollup values traded quantity on each quote date on or after
// since. Every trade contributes to every quote date of its investment, and
// sells are not netted out; callers that need open positions replay the log
// instead. A nil investmentID rolls up every investment.
func GetPortfolioRollup(tx *sql.Tx, investmentID *int32, since time.Time) ([]RollupRow, error) {
	conditions := []postgres.BoolExpression{
		Transaction.TransactionType.IN(
			postgres.NewEnumValue(model.TransactionType_Buy.String()),
			postgres.NewEnumValue(model.TransactionType_Transfer.String()),
		),
		Quote.QuoteDate.GT_EQ(postgres.TimestampzT(since)),
	}
	if investmentID != nil {
		conditions = append(conditions, Transaction.InvestmentID.EQ(postgres.Int32(*investmentID)))
	}

	stmt := Transaction.SELECT(
		Quote.QuoteDate,
		postgres.SUM(Transaction.Quantity.MUL(Quote.Close)),
	).FROM(
		Transaction.INNER_JOIN(Quote, Quote.InvestmentID.EQ(Transaction.InvestmentID)),
	).WHERE(postgres.AND(conditions...)).
		GROUP_BY(Quote.QuoteDate).
		ORDER_BY(Quote.QuoteDate.ASC())

	query, args := stmt.Sql()
	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio rollup: %w", err)
	}
	defer rows.Close()

	out := []RollupRow{}
	for rows.Next() {
		var r RollupRow
		var value float64
		if err := rows.Scan(&r.QuoteDate, &value); err != nil {
			return nil, fmt.Errorf("failed to scan rollup row: %w", err)
		}
		r.MarketValue = decimal.NewFromFloat(value)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rollup rows: %w", err)
	}

	return out, nil
}
