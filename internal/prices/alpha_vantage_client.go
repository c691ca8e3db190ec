package prices

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"invman/internal/domain"
)

type AlphaVantageClient struct {
	HttpClient *http.Client
	ApiKey     string
	BaseUrl    string
}

func NewAlphaVantageClient(apiKey string) AlphaVantageClient {
	return AlphaVantageClient{
		HttpClient: http.DefaultClient,
		ApiKey:     apiKey,
		BaseUrl:    "https://www.alphavantage.co",
	}
}

type alphaVantageDailyResult struct {
	TimeSeriesDaily map[string]struct {
		Open   string `json:"open"`
		High   string `json:"high"`
		Low    string `json:"low"`
		Close  string `json:"close"`
		Volume string `json:"volume"`
	} `json:"Time Series (Daily)"`
	Note string `json:"Note"`
}

func (c AlphaVantageClient) DailyQuotesSince(symbol string, since time.Time) ([]domain.Quote, error) {
	url := fmt.Sprintf("%s/query?function=TIME_SERIES_DAILY&symbol=%s&outputsize=compact&apikey=%s", c.BaseUrl, symbol, c.ApiKey)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("alpha vantage returned status %d for %s", response.StatusCode, symbol)
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	// API uses odd format which includes numbers in JSON keys
	cleanedResponseBytes := cleanResponseBody(responseBytes)

	var responseJson alphaVantageDailyResult
	err = json.Unmarshal(cleanedResponseBytes, &responseJson)
	if err != nil {
		return nil, err
	}

	if strings.Contains(responseJson.Note, "API call frequency") {
		time.Sleep(time.Minute)
		return c.DailyQuotesSince(symbol, since)
	}

	out := []domain.Quote{}
	for dateStr, bar := range responseJson.TimeSeriesDaily {
		quoteDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("could not parse quote date %q from Alpha Vantage response: %w", dateStr, err)
		}
		if quoteDate.Before(since) {
			continue
		}

		quote, err := parseBar(quoteDate, bar.Open, bar.High, bar.Low, bar.Close, bar.Volume)
		if err != nil {
			return nil, fmt.Errorf("could not parse bar for %s on %s: %w", symbol, dateStr, err)
		}
		out = append(out, *quote)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].QuoteDate.Before(out[j].QuoteDate)
	})
	return out, nil
}

func parseBar(date time.Time, open, high, low, close, volume string) (*domain.Quote, error) {
	o, err := decimal.NewFromString(open)
	if err != nil {
		return nil, err
	}
	h, err := decimal.NewFromString(high)
	if err != nil {
		return nil, err
	}
	l, err := decimal.NewFromString(low)
	if err != nil {
		return nil, err
	}
	c, err := decimal.NewFromString(close)
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseInt(volume, 10, 64)
	if err != nil {
		return nil, err
	}

	return &domain.Quote{
		QuoteDate: date,
		Open:      o,
		High:      h,
		Low:       l,
		Close:     c,
		Volume:    v,
	}, nil
}

func cleanResponseBody(bytes []byte) []byte {
	r := regexp.MustCompile("\"[0-9]+\\. ")
	return r.ReplaceAll(bytes, []byte("\""))
}
