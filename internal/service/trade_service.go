package service

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invman/internal/db/models/postgres/public/model"
	"invman/internal/domain"
	"invman/internal/ledger"
	"invman/internal/repository"

	invman_errors "invman/internal"
)

type BuyInput struct {
	AccountID    int32
	InvestmentID int32
	Quantity     decimal.Decimal
	Price        decimal.Decimal
	Date         time.Time
	Bucket       *model.BucketType
}

// SellInput addresses a position by a prior trade on it, usually the Buy
// that opened the lot.
type SellInput struct {
	TransactionID int32
	Quantity      decimal.Decimal
	Price         decimal.Decimal
	Date          time.Time
}

// TradeService executes trades and cash movements against a caller-scoped
// transaction. Every operation either fully records its trade leg, cash leg,
// and holding change, or leaves the log untouched.
type TradeService interface {
	Buy(tx *sql.Tx, input BuyInput) (*domain.Trade, *domain.Holding, error)
	BuyBySymbol(tx *sql.Tx, symbol string, input BuyInput) (*domain.Trade, *domain.Holding, error)
	Sell(tx *sql.Tx, input SellInput) (*domain.Trade, *domain.Holding, error)
	Deposit(tx *sql.Tx, accountID int32, amount decimal.Decimal, date time.Time) (*domain.CashMovement, error)
	Withdraw(tx *sql.Tx, accountID int32, amount decimal.Decimal, date time.Time) (*domain.CashMovement, error)
	Transfer(tx *sql.Tx, fromAccountID, toAccountID int32, amount decimal.Decimal, date time.Time) (*domain.CashMovement, *domain.CashMovement, error)
	// RecordDividend credits the account. A nil investmentID records a
	// dividend not attributed to any one security.
	RecordDividend(tx *sql.Tx, accountID int32, investmentID *int32, amount decimal.Decimal, date time.Time) (*domain.CashMovement, error)
	AmendTrade(tx *sql.Tx, trade domain.Trade) (*domain.Trade, error)
	CashBalance(tx *sql.Tx, accountID int32) (decimal.Decimal, error)
	DeleteHolding(tx *sql.Tx, holdingID int32) error
}

type tradeServiceHandler struct {
	log          zerolog.Logger
	transactions repository.TransactionLog
	holdings     repository.HoldingStore
	accounts     repository.AccountRepository
	investments  repository.InvestmentRepository
}

func NewTradeService(
	log zerolog.Logger,
	transactions repository.TransactionLog,
	holdings repository.HoldingStore,
	accounts repository.AccountRepository,
	investments repository.InvestmentRepository,
) TradeService {
	return tradeServiceHandler{
		log:          log.With().Str("component", "trade_service").Logger(),
		transactions: transactions,
		holdings:     holdings,
		accounts:     accounts,
		investments:  investments,
	}
}

func (h tradeServiceHandler) Buy(tx *sql.Tx, input BuyInput) (*domain.Trade, *domain.Holding, error) {
	if !input.Quantity.IsPositive() {
		return nil, nil, invman_errors.ErrInvalidArgument{Field: "quantity", Reason: "must be positive"}
	}
	if !input.Price.IsPositive() {
		return nil, nil, invman_errors.ErrInvalidArgument{Field: "price", Reason: "must be positive"}
	}

	if _, err := h.accounts.Get(tx, input.AccountID); err != nil {
		return nil, nil, err
	}
	if _, err := h.investments.Get(tx, input.InvestmentID); err != nil {
		return nil, nil, err
	}

	holding, err := h.holdings.Add(tx, domain.Holding{
		LotRef:        uuid.New(),
		AccountID:     input.AccountID,
		InvestmentID:  input.InvestmentID,
		Quantity:      input.Quantity,
		PurchasePrice: input.Price,
		PurchaseDate:  input.Date,
		Bucket:        input.Bucket,
	})
	if err != nil {
		return nil, nil, err
	}

	cashLeg, err := h.transactions.Append(tx, domain.CashMovement{
		AccountID: input.AccountID,
		Amount:    input.Quantity.Mul(input.Price),
		Direction: model.CashDirection_Debit,
		Kind:      model.TransactionType_Cash,
		Date:      input.Date,
	})
	if err != nil {
		return nil, nil, err
	}
	cashLegID := cashLeg.(domain.CashMovement).TransactionID

	event, err := h.transactions.Append(tx, domain.Trade{
		AccountID:                   input.AccountID,
		HoldingID:                   *holding.HoldingID,
		InvestmentID:                input.InvestmentID,
		Action:                      model.TransactionType_Buy,
		Quantity:                    input.Quantity,
		Price:                       input.Price,
		Date:                        input.Date,
		AssociatedCashTransactionID: cashLegID,
	})
	if err != nil {
		return nil, nil, err
	}
	trade := event.(domain.Trade)

	h.log.Info().
		Int32("accountID", input.AccountID).
		Int32("holdingID", *holding.HoldingID).
		Str("quantity", input.Quantity.String()).
		Str("price", input.Price.String()).
		Msg("processed buy order")

	return &trade, holding, nil
}

// BuyBySymbol looks the investment up by ticker, registering it on first
// use so a buy never fails just because nobody has traded the symbol yet.
func (h tradeServiceHandler) BuyBySymbol(tx *sql.Tx, symbol string, input BuyInput) (*domain.Trade, *domain.Holding, error) {
	investment, err := h.investments.GetBySymbol(tx, symbol)
	var notFound invman_errors.ErrNotFound
	if errors.As(err, &notFound) {
		investment, err = h.investments.Add(tx, domain.Investment{
			Symbol:         symbol,
			CompanyName:    symbol,
			InvestmentType: model.InvestmentType_Stock,
		})
		if err == nil {
			h.log.Info().Str("symbol", symbol).Msg("registered investment on first buy")
		}
	}
	if err != nil {
		return nil, nil, err
	}
	input.InvestmentID = *investment.InvestmentID
	return h.Buy(tx, input)
}

func (h tradeServiceHandler) Sell(tx *sql.Tx, input SellInput) (*domain.Trade, *domain.Holding, error) {
	if !input.Quantity.IsPositive() {
		return nil, nil, invman_errors.ErrInvalidArgument{Field: "quantity", Reason: "must be positive"}
	}
	if input.Price.IsNegative() {
		return nil, nil, invman_errors.ErrInvalidArgument{Field: "price", Reason: "must not be negative"}
	}

	prior, err := h.transactions.Get(tx, input.TransactionID)
	if err != nil {
		return nil, nil, err
	}
	priorTrade, ok := prior.(domain.Trade)
	if !ok {
		return nil, nil, invman_errors.ErrInvalidOperation{Reason: "referenced transaction is not a trade on a holding"}
	}
	holdingID := priorTrade.HoldingID

	holding, err := h.holdings.GetForUpdate(tx, holdingID)
	if err != nil {
		return nil, nil, err
	}
	if holding.Quantity.LessThan(input.Quantity) {
		return nil, nil, invman_errors.ErrInsufficientQuantity{
			HoldingID: holdingID,
			Available: holding.Quantity,
			Requested: input.Quantity,
		}
	}

	holding, err = h.holdings.SetQuantity(tx, holdingID, holding.Quantity.Sub(input.Quantity))
	if err != nil {
		return nil, nil, err
	}

	cashLeg, err := h.transactions.Append(tx, domain.CashMovement{
		AccountID: holding.AccountID,
		Amount:    input.Quantity.Mul(input.Price),
		Direction: model.CashDirection_Credit,
		Kind:      model.TransactionType_Cash,
		Date:      input.Date,
	})
	if err != nil {
		return nil, nil, err
	}
	cashLegID := cashLeg.(domain.CashMovement).TransactionID

	event, err := h.transactions.Append(tx, domain.Trade{
		AccountID:                   holding.AccountID,
		HoldingID:                   holdingID,
		InvestmentID:                holding.InvestmentID,
		Action:                      model.TransactionType_Sell,
		Quantity:                    input.Quantity,
		Price:                       input.Price,
		Date:                        input.Date,
		AssociatedCashTransactionID: cashLegID,
	})
	if err != nil {
		return nil, nil, err
	}
	trade := event.(domain.Trade)

	h.log.Info().
		Int32("accountID", holding.AccountID).
		Int32("holdingID", holdingID).
		Str("quantity", input.Quantity.String()).
		Str("remaining", holding.Quantity.String()).
		Msg("processed sell order")

	return &trade, holding, nil
}

func (h tradeServiceHandler) Deposit(tx *sql.Tx, accountID int32, amount decimal.Decimal, date time.Time) (*domain.CashMovement, error) {
	return h.recordCash(tx, accountID, amount, model.CashDirection_Credit, date)
}

func (h tradeServiceHandler) Withdraw(tx *sql.Tx, accountID int32, amount decimal.Decimal, date time.Time) (*domain.CashMovement, error) {
	return h.recordCash(tx, accountID, amount, model.CashDirection_Debit, date)
}

func (h tradeServiceHandler) recordCash(tx *sql.Tx, accountID int32, amount decimal.Decimal, direction model.CashDirection, date time.Time) (*domain.CashMovement, error) {
	if !amount.IsPositive() {
		return nil, invman_errors.ErrInvalidArgument{Field: "amount", Reason: "must be positive"}
	}
	if _, err := h.accounts.Get(tx, accountID); err != nil {
		return nil, err
	}

	event, err := h.transactions.Append(tx, domain.CashMovement{
		AccountID: accountID,
		Amount:    amount,
		Direction: direction,
		Kind:      model.TransactionType_Cash,
		Date:      date,
	})
	if err != nil {
		return nil, err
	}
	movement := event.(domain.CashMovement)
	return &movement, nil
}

// Transfer records a matched debit and credit pair. The two legs share an
// amount and date, so balances stay consistent in aggregate.
func (h tradeServiceHandler) Transfer(tx *sql.Tx, fromAccountID, toAccountID int32, amount decimal.Decimal, date time.Time) (*domain.CashMovement, *domain.CashMovement, error) {
	if !amount.IsPositive() {
		return nil, nil, invman_errors.ErrInvalidArgument{Field: "amount", Reason: "must be positive"}
	}
	if fromAccountID == toAccountID {
		return nil, nil, invman_errors.ErrInvalidArgument{Field: "toAccountID", Reason: "cannot transfer to the same account"}
	}
	if _, err := h.accounts.Get(tx, fromAccountID); err != nil {
		return nil, nil, err
	}
	if _, err := h.accounts.Get(tx, toAccountID); err != nil {
		return nil, nil, err
	}

	debitEvent, err := h.transactions.Append(tx, domain.CashMovement{
		AccountID: fromAccountID,
		Amount:    amount,
		Direction: model.CashDirection_Debit,
		Kind:      model.TransactionType_Transfer,
		Date:      date,
	})
	if err != nil {
		return nil, nil, err
	}
	creditEvent, err := h.transactions.Append(tx, domain.CashMovement{
		AccountID: toAccountID,
		Amount:    amount,
		Direction: model.CashDirection_Credit,
		Kind:      model.TransactionType_Transfer,
		Date:      date,
	})
	if err != nil {
		return nil, nil, err
	}

	debit := debitEvent.(domain.CashMovement)
	credit := creditEvent.(domain.CashMovement)

	h.log.Info().
		Int32("fromAccountID", fromAccountID).
		Int32("toAccountID", toAccountID).
		Str("amount", amount.String()).
		Msg("processed transfer")

	return &debit, &credit, nil
}

func (h tradeServiceHandler) RecordDividend(tx *sql.Tx, accountID int32, investmentID *int32, amount decimal.Decimal, date time.Time) (*domain.CashMovement, error) {
	if !amount.IsPositive() {
		return nil, invman_errors.ErrInvalidArgument{Field: "amount", Reason: "must be positive"}
	}
	if _, err := h.accounts.Get(tx, accountID); err != nil {
		return nil, err
	}
	if investmentID != nil {
		if _, err := h.investments.Get(tx, *investmentID); err != nil {
			return nil, err
		}
	}

	event, err := h.transactions.Append(tx, domain.CashMovement{
		AccountID:    accountID,
		Amount:       amount,
		Direction:    model.CashDirection_Credit,
		Kind:         model.TransactionType_Dividend,
		InvestmentID: investmentID,
		Date:         date,
	})
	if err != nil {
		return nil, err
	}
	movement := event.(domain.CashMovement)
	return &movement, nil
}

// AmendTrade corrects quantity, price, or date of a recorded trade. The
// event's type is fixed at append time; turning a buy into a sell would
// invalidate the holding it created.
func (h tradeServiceHandler) AmendTrade(tx *sql.Tx, trade domain.Trade) (*domain.Trade, error) {
	if trade.TransactionID == nil {
		return nil, invman_errors.ErrInvalidArgument{Field: "transactionID", Reason: "required to amend a trade"}
	}
	if !trade.Quantity.IsPositive() {
		return nil, invman_errors.ErrInvalidArgument{Field: "quantity", Reason: "must be positive"}
	}

	existing, err := h.transactions.Get(tx, *trade.TransactionID)
	if err != nil {
		return nil, err
	}
	existingTrade, ok := existing.(domain.Trade)
	if !ok {
		return nil, invman_errors.ErrInvalidOperation{Reason: "only trades can be amended"}
	}
	if trade.Action != "" && trade.Action != existingTrade.Action {
		return nil, invman_errors.ErrInvalidOperation{Reason: "cannot change the type of a recorded trade"}
	}

	return h.transactions.AmendTrade(tx, trade)
}

func (h tradeServiceHandler) CashBalance(tx *sql.Tx, accountID int32) (decimal.Decimal, error) {
	if _, err := h.accounts.Get(tx, accountID); err != nil {
		return decimal.Zero, err
	}

	movements, err := h.transactions.CashEvents(tx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.CashBalance(movements), nil
}

// DeleteHolding removes an empty lot. Lots still referenced by the log are
// kept so the log replays cleanly.
func (h tradeServiceHandler) DeleteHolding(tx *sql.Tx, holdingID int32) error {
	count, err := h.transactions.CountForHolding(tx, holdingID)
	if err != nil {
		return err
	}
	if count > 0 {
		return invman_errors.ErrInvalidOperation{Reason: "holding is referenced by recorded transactions"}
	}
	return h.holdings.Delete(tx, holdingID)
}
