package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	db "invman/internal/db/query"
	"invman/internal/repository"
	"invman/internal/service"
)

func main() {
	var (
		accountID = flag.Int("account", 0, "account id")
		rollup    = flag.Bool("rollup", false, "print the valuation time series instead of the summary")
		symbol    = flag.String("symbol", "all", "restrict the rollup to one symbol")
		sinceStr  = flag.String("since", "", "rollup start date, YYYY-MM-DD")
		sectors   = flag.Bool("sectors", false, "print market value by sector")
	)
	flag.Parse()

	since := time.Time{}
	if *sinceStr != "" {
		parsed, err := time.Parse("2006-01-02", *sinceStr)
		if err != nil {
			log.Fatal(err)
		}
		since = parsed
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	dbConn, err := db.New()
	if err != nil {
		log.Fatal(err)
	}
	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}
	defer tx.Rollback()

	reportsService := service.NewReportsService(
		logger,
		repository.NewTransactionLog(),
		repository.NewHoldingStore(),
		repository.NewInvestmentRepository(),
		repository.NewQuoteStore(),
	)

	switch {
	case *rollup:
		points, err := reportsService.PortfolioRollup(tx, *symbol, since)
		if err != nil {
			log.Fatal(err)
		}
		for _, p := range points {
			fmt.Printf("%s\t%s\n", p.Date.Format("2006-01-02"), p.MarketValue.StringFixed(2))
		}
	case *sectors:
		summaries, err := reportsService.SectorSummaries(tx, int32(*accountID))
		if err != nil {
			log.Fatal(err)
		}
		for _, s := range summaries {
			fmt.Printf("%s\t%s\n", s.Sector, s.MarketValue.StringFixed(2))
		}
	default:
		report, err := reportsService.Report(tx, int32(*accountID))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("cash balance\t%s\n", report.CashBalance.StringFixed(2))
		fmt.Printf("total change\t%s\n", report.TotalChange.StringFixed(2))
		for _, h := range report.Holdings {
			fmt.Printf("%s\tqty %s\tvalue %s\tchange %s\n",
				h.Symbol, h.TotalQuantity.String(), h.MarketValue.StringFixed(2), h.Change.StringFixed(2))
		}
	}
}
