package repository

import (
	"database/sql"

	"invman/internal/db/models/postgres/public/model"
	db "invman/internal/db/query"
	"invman/internal/domain"
)

type AccountRepository interface {
	Add(tx *sql.Tx, account domain.Account) (*domain.Account, error)
	Get(tx *sql.Tx, accountID int32) (*domain.Account, error)
	List(tx *sql.Tx) ([]domain.Account, error)
}

type accountRepositoryHandler struct {
}

func NewAccountRepository() AccountRepository {
	return accountRepositoryHandler{}
}

func (h accountRepositoryHandler) Add(tx *sql.Tx, account domain.Account) (*domain.Account, error) {
	inserted, err := db.AddAccount(tx, model.Account{
		AccountName:   account.AccountName,
		AccountNumber: account.AccountNumber,
		AccountType:   account.AccountType,
		Owner:         account.Owner,
		Company:       account.Company,
	})
	if err != nil {
		return nil, err
	}
	out := accountFromDb(*inserted)
	return &out, nil
}

func (h accountRepositoryHandler) Get(tx *sql.Tx, accountID int32) (*domain.Account, error) {
	row, err := db.GetAccount(tx, accountID)
	if err != nil {
		return nil, err
	}
	out := accountFromDb(*row)
	return &out, nil
}

func (h accountRepositoryHandler) List(tx *sql.Tx) ([]domain.Account, error) {
	rows, err := db.ListAccounts(tx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Account, len(rows))
	for i, row := range rows {
		out[i] = accountFromDb(row)
	}
	return out, nil
}

func accountFromDb(m model.Account) domain.Account {
	return domain.Account{
		AccountID:     &m.AccountID,
		AccountName:   m.AccountName,
		AccountNumber: m.AccountNumber,
		AccountType:   m.AccountType,
		Owner:         m.Owner,
		Company:       m.Company,
	}
}
