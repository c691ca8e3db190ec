package domain

import (
	"invman/internal/db/models/postgres/public/model"
)

// Investment is a tradeable security. Created on first buy when the symbol
// is unknown; shared read-only by any number of holdings.
type Investment struct {
	InvestmentID   *int32
	Symbol         string
	CompanyName    string
	Exchange       string
	Sector         string
	InvestmentType model.InvestmentType
}
