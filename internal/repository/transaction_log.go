package repository

import (
	"database/sql"
	"fmt"
	"time"

	"invman/internal/db/models/postgres/public/model"
	. "invman/internal/db/models/postgres/public/table"
	db "invman/internal/db/query"
	"invman/internal/domain"

	"github.com/go-jet/jet/v2/postgres"

	invman_errors "invman/internal"
)

// TransactionLog is the append-only event log. Rows are never deleted; the
// only mutation allowed is amending a mis-entered trade in place.
type TransactionLog interface {
	Append(tx *sql.Tx, event domain.LedgerEvent) (domain.LedgerEvent, error)
	Get(tx *sql.Tx, transactionID int32) (domain.LedgerEvent, error)
	ForAccount(tx *sql.Tx, accountID int32) ([]domain.LedgerEvent, error)
	ForAccountBetween(tx *sql.Tx, accountID int32, from, to time.Time) ([]domain.LedgerEvent, error)
	ForHolding(tx *sql.Tx, holdingID int32) ([]domain.LedgerEvent, error)
	ForInvestmentAndType(tx *sql.Tx, investmentID int32, transactionType model.TransactionType) ([]domain.LedgerEvent, error)
	CashEvents(tx *sql.Tx, accountID int32) ([]domain.CashMovement, error)
	AmendTrade(tx *sql.Tx, trade domain.Trade) (*domain.Trade, error)
	CountForHolding(tx *sql.Tx, holdingID int32) (int64, error)
	// PortfolioRollup values bought quantity at each close on or after since.
	// A nil investmentID covers every investment.
	PortfolioRollup(tx *sql.Tx, investmentID *int32, since time.Time) ([]domain.RollupPoint, error)
}

type transactionLogHandler struct {
}

func NewTransactionLog() TransactionLog {
	return transactionLogHandler{}
}

func (h transactionLogHandler) Append(tx *sql.Tx, event domain.LedgerEvent) (domain.LedgerEvent, error) {
	row, err := eventToDb(event)
	if err != nil {
		return nil, err
	}

	inserted, err := db.AddTransaction(tx, row)
	if err != nil {
		return nil, err
	}

	return eventFromDb(*inserted)
}

func (h transactionLogHandler) Get(tx *sql.Tx, transactionID int32) (domain.LedgerEvent, error) {
	row, err := db.GetTransaction(tx, transactionID)
	if err != nil {
		return nil, err
	}
	return eventFromDb(*row)
}

func (h transactionLogHandler) ForAccount(tx *sql.Tx, accountID int32) ([]domain.LedgerEvent, error) {
	rows, err := db.GetTransactionsForAccount(tx, accountID)
	if err != nil {
		return nil, err
	}
	return eventsFromDb(rows)
}

func (h transactionLogHandler) ForAccountBetween(tx *sql.Tx, accountID int32, from, to time.Time) ([]domain.LedgerEvent, error) {
	rows, err := db.GetTransactionsForAccountBetween(tx, accountID, from, to)
	if err != nil {
		return nil, err
	}
	return eventsFromDb(rows)
}

func (h transactionLogHandler) ForHolding(tx *sql.Tx, holdingID int32) ([]domain.LedgerEvent, error) {
	rows, err := db.GetTransactionsByHolding(tx, holdingID)
	if err != nil {
		return nil, err
	}
	return eventsFromDb(rows)
}

func (h transactionLogHandler) ForInvestmentAndType(tx *sql.Tx, investmentID int32, transactionType model.TransactionType) ([]domain.LedgerEvent, error) {
	rows, err := db.GetTransactionsByInvestmentAndType(tx, investmentID, transactionType)
	if err != nil {
		return nil, err
	}
	return eventsFromDb(rows)
}

func (h transactionLogHandler) CashEvents(tx *sql.Tx, accountID int32) ([]domain.CashMovement, error) {
	rows, err := db.GetCashTransactionsForAccount(tx, accountID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CashMovement, 0, len(rows))
	for _, row := range rows {
		event, err := eventFromDb(row)
		if err != nil {
			return nil, err
		}
		movement, ok := event.(domain.CashMovement)
		if !ok {
			return nil, fmt.Errorf("transaction %d has cash direction but type %s", row.TransactionID, row.TransactionType)
		}
		out = append(out, movement)
	}
	return out, nil
}

func (h transactionLogHandler) AmendTrade(tx *sql.Tx, trade domain.Trade) (*domain.Trade, error) {
	if trade.TransactionID == nil {
		return nil, invman_errors.ErrInvalidArgument{Field: "transactionID", Reason: "required to amend a trade"}
	}

	price := trade.Price
	row := model.Transaction{
		TransactionID:   *trade.TransactionID,
		Quantity:        trade.Quantity,
		Price:           &price,
		TransactionDate: trade.Date,
	}

	updated, err := db.UpdateTransaction(tx, row, postgres.ColumnList{
		Transaction.Quantity,
		Transaction.Price,
		Transaction.TransactionDate,
	})
	if err != nil {
		return nil, err
	}

	event, err := eventFromDb(*updated)
	if err != nil {
		return nil, err
	}
	amended, ok := event.(domain.Trade)
	if !ok {
		return nil, fmt.Errorf("transaction %d is not a trade", *trade.TransactionID)
	}
	return &amended, nil
}

func (h transactionLogHandler) CountForHolding(tx *sql.Tx, holdingID int32) (int64, error) {
	return db.CountTransactionsByHolding(tx, holdingID)
}

func (h transactionLogHandler) PortfolioRollup(tx *sql.Tx, investmentID *int32, since time.Time) ([]domain.RollupPoint, error) {
	rows, err := db.GetPortfolioRollup(tx, investmentID, since)
	if err != nil {
		return nil, err
	}

	out := make([]domain.RollupPoint, len(rows))
	for i, row := range rows {
		out[i] = domain.RollupPoint{
			Date:        row.QuoteDate,
			MarketValue: row.MarketValue,
		}
	}
	return out, nil
}

func eventsFromDb(rows []model.Transaction) ([]domain.LedgerEvent, error) {
	out := make([]domain.LedgerEvent, len(rows))
	for i, row := range rows {
		event, err := eventFromDb(row)
		if err != nil {
			return nil, err
		}
		out[i] = event
	}
	return out, nil
}

func eventFromDb(t model.Transaction) (domain.LedgerEvent, error) {
	id := t.TransactionID
	switch t.TransactionType {
	case model.TransactionType_Buy, model.TransactionType_Sell, model.TransactionType_ReinvestDividend:
		if t.HoldingID == nil || t.InvestmentID == nil || t.Price == nil {
			return nil, fmt.Errorf("trade transaction %d is missing holding, investment, or price", id)
		}
		return domain.Trade{
			TransactionID:               &id,
			AccountID:                   t.AccountID,
			HoldingID:                   *t.HoldingID,
			InvestmentID:                *t.InvestmentID,
			Action:                      t.TransactionType,
			Quantity:                    t.Quantity,
			Price:                       *t.Price,
			Date:                        t.TransactionDate,
			AssociatedCashTransactionID: t.AssociatedCashTransactionID,
		}, nil
	case model.TransactionType_Cash, model.TransactionType_Dividend, model.TransactionType_Transfer:
		if t.Direction == nil {
			return nil, fmt.Errorf("cash transaction %d is missing a direction", id)
		}
		return domain.CashMovement{
			TransactionID: &id,
			AccountID:     t.AccountID,
			Amount:        t.Quantity,
			Direction:     *t.Direction,
			Kind:          t.TransactionType,
			InvestmentID:  t.InvestmentID,
			Date:          t.TransactionDate,
		}, nil
	case model.TransactionType_Split:
		if t.HoldingID == nil || t.InvestmentID == nil {
			return nil, fmt.Errorf("split transaction %d is missing holding or investment", id)
		}
		return domain.SplitAdjustment{
			TransactionID: &id,
			AccountID:     t.AccountID,
			HoldingID:     *t.HoldingID,
			InvestmentID:  *t.InvestmentID,
			NewQuantity:   t.Quantity,
			Date:          t.TransactionDate,
		}, nil
	}
	return nil, fmt.Errorf("unknown transaction type %s on transaction %d", t.TransactionType, id)
}

func eventToDb(event domain.LedgerEvent) (model.Transaction, error) {
	switch e := event.(type) {
	case domain.Trade:
		holdingID := e.HoldingID
		investmentID := e.InvestmentID
		price := e.Price
		return model.Transaction{
			AccountID:                   e.AccountID,
			HoldingID:                   &holdingID,
			InvestmentID:                &investmentID,
			TransactionType:             e.Action,
			Quantity:                    e.Quantity,
			Price:                       &price,
			AssociatedCashTransactionID: e.AssociatedCashTransactionID,
			TransactionDate:             e.Date,
		}, nil
	case domain.CashMovement:
		direction := e.Direction
		return model.Transaction{
			AccountID:       e.AccountID,
			InvestmentID:    e.InvestmentID,
			TransactionType: e.Kind,
			Quantity:        e.Amount,
			Direction:       &direction,
			TransactionDate: e.Date,
		}, nil
	case domain.SplitAdjustment:
		holdingID := e.HoldingID
		investmentID := e.InvestmentID
		return model.Transaction{
			AccountID:       e.AccountID,
			HoldingID:       &holdingID,
			InvestmentID:    &investmentID,
			TransactionType: model.TransactionType_Split,
			Quantity:        e.NewQuantity,
			TransactionDate: e.Date,
		}, nil
	}
	return model.Transaction{}, fmt.Errorf("unsupported ledger event %T", event)
}
