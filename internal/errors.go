package invman_errors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a referenced account, investment, holding,
// transaction or quote does not exist.
type ErrNotFound struct {
	Entity string
	ID     int32
	Key    string
}

func (e ErrNotFound) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ErrInvalidArgument is returned when an input fails validation before any
// write is attempted.
type ErrInvalidArgument struct {
	Field  string
	Reason string
}

func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrInsufficientQuantity is returned when a sell requests more units than
// the holding has open.
type ErrInsufficientQuantity struct {
	HoldingID int32
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e ErrInsufficientQuantity) Error() string {
	return fmt.Sprintf("holding %d has %s units open, cannot sell %s",
		e.HoldingID, e.Available.String(), e.Requested.String())
}

// ErrInvalidOperation is returned when an operation is structurally not
// allowed: amending a transaction's type, same-account transfers,
// non-positive split ratios, deleting records that are still referenced.
type ErrInvalidOperation struct {
	Reason string
}

func (e ErrInvalidOperation) Error() string {
	return e.Reason
}
