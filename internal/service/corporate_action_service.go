package service

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invman/internal/domain"
	"invman/internal/repository"

	invman_errors "invman/internal"
)

// CorporateActionService applies stock splits to every open lot of an
// investment. A split rescales lot quantities in place and leaves each lot's
// recorded purchase price untouched; the log gets one audit event per lot.
type CorporateActionService interface {
	ModelSplit(tx *sql.Tx, investmentID int32, ratio decimal.Decimal) (*domain.SplitPreview, error)
	// ApplySplit persists the rescaled quantities and returns the same
	// before/after pair ModelSplit would have shown.
	ApplySplit(tx *sql.Tx, investmentID int32, ratio decimal.Decimal, date time.Time) (*domain.SplitPreview, error)
}

type corporateActionServiceHandler struct {
	log          zerolog.Logger
	transactions repository.TransactionLog
	holdings     repository.HoldingStore
	investments  repository.InvestmentRepository
}

func NewCorporateActionService(
	log zerolog.Logger,
	transactions repository.TransactionLog,
	holdings repository.HoldingStore,
	investments repository.InvestmentRepository,
) CorporateActionService {
	return corporateActionServiceHandler{
		log:          log.With().Str("component", "corporate_action_service").Logger(),
		transactions: transactions,
		holdings:     holdings,
		investments:  investments,
	}
}

// ModelSplit previews a split without writing anything.
func (h corporateActionServiceHandler) ModelSplit(tx *sql.Tx, investmentID int32, ratio decimal.Decimal) (*domain.SplitPreview, error) {
	if !ratio.IsPositive() {
		return nil, invman_errors.ErrInvalidOperation{Reason: "split ratio must be positive"}
	}
	if _, err := h.investments.Get(tx, investmentID); err != nil {
		return nil, err
	}

	lots, err := h.holdings.OpenByInvestmentForUpdate(tx, investmentID)
	if err != nil {
		return nil, err
	}

	preview := domain.SplitPreview{
		Before: lots,
		After:  make([]domain.Holding, len(lots)),
	}
	for i, lot := range lots {
		after := *lot.DeepCopy()
		after.Quantity = lot.Quantity.Mul(ratio)
		preview.After[i] = after
	}

	return &preview, nil
}

func (h corporateActionServiceHandler) ApplySplit(tx *sql.Tx, investmentID int32, ratio decimal.Decimal, date time.Time) (*domain.SplitPreview, error) {
	preview, err := h.ModelSplit(tx, investmentID, ratio)
	if err != nil {
		return nil, err
	}

	for i, lot := range preview.After {
		rescaled, err := h.holdings.SetQuantity(tx, *lot.HoldingID, lot.Quantity)
		if err != nil {
			return nil, err
		}

		_, err = h.transactions.Append(tx, domain.SplitAdjustment{
			AccountID:    lot.AccountID,
			HoldingID:    *lot.HoldingID,
			InvestmentID: investmentID,
			NewQuantity:  rescaled.Quantity,
			Date:         date,
		})
		if err != nil {
			return nil, err
		}
		preview.After[i] = *rescaled
	}

	h.log.Info().
		Int32("investmentID", investmentID).
		Str("ratio", ratio.String()).
		Int("lots", len(preview.After)).
		Msg("applied split")

	return preview, nil
}
