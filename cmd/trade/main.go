package main

import (
	"flag"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	db "invman/internal/db/query"
	"invman/internal/domain"
	"invman/internal/repository"
	"invman/internal/service"
)

func main() {
	var (
		op        = flag.String("op", "", "buy | sell | deposit | withdraw | transfer | dividend | amend | split | split-preview | edit-investment | balance")
		accountID = flag.Int("account", 0, "account id")
		toAccount = flag.Int("to-account", 0, "destination account id (transfer)")
		symbol    = flag.String("symbol", "", "investment symbol (buy)")
		txnID     = flag.Int("transaction", 0, "prior transaction id (sell, amend)")
		qtyStr    = flag.String("quantity", "", "trade quantity")
		priceStr  = flag.String("price", "", "trade price")
		amountStr = flag.String("amount", "", "cash amount")
		invID     = flag.Int("investment", 0, "investment id (dividend, split)")
		ratioStr  = flag.String("ratio", "", "split ratio, e.g. 2 for a 2-for-1 split")
		nameStr   = flag.String("name", "", "company name (edit-investment)")
		sectorStr = flag.String("sector", "", "sector (edit-investment)")
		dateStr   = flag.String("date", "", "transaction date, YYYY-MM-DD (default today)")
	)
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	date := time.Now().UTC()
	if *dateStr != "" {
		parsed, err := time.Parse("2006-01-02", *dateStr)
		if err != nil {
			log.Fatal(err)
		}
		date = parsed
	}

	dbConn, err := db.New()
	if err != nil {
		log.Fatal(err)
	}
	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}
	defer tx.Rollback()

	tradeService := service.NewTradeService(
		logger,
		repository.NewTransactionLog(),
		repository.NewHoldingStore(),
		repository.NewAccountRepository(),
		repository.NewInvestmentRepository(),
	)

	switch *op {
	case "buy":
		quantity := mustDecimal(*qtyStr)
		price := mustDecimal(*priceStr)
		trade, holding, err := tradeService.BuyBySymbol(tx, *symbol, service.BuyInput{
			AccountID: int32(*accountID),
			Quantity:  quantity,
			Price:     price,
			Date:      date,
		})
		if err != nil {
			log.Fatal(err)
		}
		logger.Info().
			Int32("transactionID", *trade.TransactionID).
			Int32("holdingID", *holding.HoldingID).
			Msg("bought")
	case "sell":
		trade, holding, err := tradeService.Sell(tx, service.SellInput{
			TransactionID: int32(*txnID),
			Quantity:      mustDecimal(*qtyStr),
			Price:         mustDecimal(*priceStr),
			Date:          date,
		})
		if err != nil {
			log.Fatal(err)
		}
		logger.Info().
			Int32("transactionID", *trade.TransactionID).
			Str("remaining", holding.Quantity.String()).
			Msg("sold")
	case "deposit":
		if _, err := tradeService.Deposit(tx, int32(*accountID), mustDecimal(*amountStr), date); err != nil {
			log.Fatal(err)
		}
	case "withdraw":
		if _, err := tradeService.Withdraw(tx, int32(*accountID), mustDecimal(*amountStr), date); err != nil {
			log.Fatal(err)
		}
	case "transfer":
		if _, _, err := tradeService.Transfer(tx, int32(*accountID), int32(*toAccount), mustDecimal(*amountStr), date); err != nil {
			log.Fatal(err)
		}
	case "dividend":
		var dividendInvestment *int32
		if *invID != 0 {
			id := int32(*invID)
			dividendInvestment = &id
		}
		if _, err := tradeService.RecordDividend(tx, int32(*accountID), dividendInvestment, mustDecimal(*amountStr), date); err != nil {
			log.Fatal(err)
		}
	case "amend":
		id := int32(*txnID)
		if _, err := tradeService.AmendTrade(tx, domain.Trade{
			TransactionID: &id,
			Quantity:      mustDecimal(*qtyStr),
			Price:         mustDecimal(*priceStr),
			Date:          date,
		}); err != nil {
			log.Fatal(err)
		}
	case "split", "split-preview":
		corporateActions := service.NewCorporateActionService(
			logger,
			repository.NewTransactionLog(),
			repository.NewHoldingStore(),
			repository.NewInvestmentRepository(),
		)
		ratio := mustDecimal(*ratioStr)
		var preview *domain.SplitPreview
		if *op == "split" {
			preview, err = corporateActions.ApplySplit(tx, int32(*invID), ratio, date)
		} else {
			preview, err = corporateActions.ModelSplit(tx, int32(*invID), ratio)
		}
		if err != nil {
			log.Fatal(err)
		}
		for i, lot := range preview.After {
			logger.Info().
				Int32("holdingID", *lot.HoldingID).
				Str("before", preview.Before[i].Quantity.String()).
				Str("after", lot.Quantity.String()).
				Msg("split lot")
		}
	case "edit-investment":
		investments := repository.NewInvestmentRepository()
		investment, err := investments.Get(tx, int32(*invID))
		if err != nil {
			log.Fatal(err)
		}
		if *symbol != "" {
			investment.Symbol = *symbol
		}
		if *nameStr != "" {
			investment.CompanyName = *nameStr
		}
		if *sectorStr != "" {
			investment.Sector = *sectorStr
		}
		updated, err := investments.Update(tx, *investment)
		if err != nil {
			log.Fatal(err)
		}
		logger.Info().
			Int32("investmentID", *updated.InvestmentID).
			Str("symbol", updated.Symbol).
			Msg("updated investment")
	case "balance":
		balance, err := tradeService.CashBalance(tx, int32(*accountID))
		if err != nil {
			log.Fatal(err)
		}
		logger.Info().Str("balance", balance.String()).Msg("cash balance")
	default:
		flag.Usage()
		os.Exit(1)
	}

	if err := tx.Commit(); err != nil {
		log.Fatal(err)
	}
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}
