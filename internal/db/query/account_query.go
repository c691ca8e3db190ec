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

func AddAccount(tx *sql.Tx, account model.Account) (*model.Account, error) {
	account.CreatedAt = time.Now().UTC()
	account.ModifiedAt = time.Now().UTC()

	stmt := Account.INSERT(Account.MutableColumns).
		MODEL(account).
		RETURNING(Account.AllColumns)

	result := model.Account{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	return &result, nil
}

func GetAccount(tx *sql.Tx, accountID int32) (*model.Account, error) {
	stmt := Account.SELECT(Account.AllColumns).
		WHERE(Account.AccountID.EQ(postgres.Int32(accountID)))

	result := model.Account{}
	err := stmt.Query(tx, &result)
	if err == qrm.ErrNoRows {
		return nil, invman_errors.ErrNotFound{Entity: "account", ID: accountID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", accountID, err)
	}

	return &result, nil
}

func ListAccounts(tx *sql.Tx) ([]model.Account, error) {
	stmt := Account.SELECT(Account.AllColumns).
		ORDER_BY(Account.AccountName.ASC())

	results := []model.Account{}
	err := stmt.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return results, nil
}
