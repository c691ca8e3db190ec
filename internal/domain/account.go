package domain

import (
	"invman/internal/db/models/postgres/public/model"
)

// Account owns holdings and transactions. Cash balance is never stored on
// the account; it is derived from the transaction log on demand.
type Account struct {
	AccountID     *int32
	AccountName   string
	AccountNumber string
	AccountType   model.AccountType
	Owner         string
	Company       string
}
