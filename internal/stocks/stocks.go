// Package stocks fetches company metadata and quote data from Yahoo
// Finance. Metadata is decoration on top of the sentiment analysis, so
// every lookup degrades to a ticker-only result instead of failing the
// caller.
package stocks

import (
	"context"
	"fmt"
	"time"

	"stocksentinel/internal/api"
	"stocksentinel/internal/logger"
)

const yahooQuoteBaseURL = "https://query1.finance.yahoo.com"

// StockInfo holds company metadata and the latest quote.
type StockInfo struct {
	Ticker           string  `json:"ticker"`
	CompanyName      string  `json:"company_name,omitempty"`
	Sector           string  `json:"sector,omitempty"`
	Industry         string  `json:"industry,omitempty"`
	MarketCap        int64   `json:"market_cap,omitempty"`
	CurrentPrice     float64 `json:"current_price,omitempty"`
	PreviousClose    float64 `json:"previous_close,omitempty"`
	DayChangePercent float64 `json:"day_change_percent,omitempty"`
}

// Client looks up stock metadata.
type Client struct {
	api *api.Client
}

// NewClient creates a stock metadata client.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		api: api.NewClient(
			api.WithBaseURL(yahooQuoteBaseURL),
			api.WithTimeout(timeout),
		),
	}
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
			Price struct {
				LongName                   string     `json:"longName"`
				ShortName                  string     `json:"shortName"`
				MarketCap                  rawValue   `json:"marketCap"`
				RegularMarketPrice         rawValue   `json:"regularMarketPrice"`
				RegularMarketPreviousClose rawValue   `json:"regularMarketPreviousClose"`
				RegularMarketChangePercent rawPercent `json:"regularMarketChangePercent"`
			} `json:"price"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type rawValue struct {
	Raw float64 `json:"raw"`
}

type rawPercent struct {
	Raw float64 `json:"raw"`
}

// Lookup fetches metadata for a ticker. On any failure it logs and returns
// a StockInfo carrying only the ticker.
func (c *Client) Lookup(ctx context.Context, ticker string) StockInfo {
	info := StockInfo{Ticker: FormatTicker(ticker)}

	path := fmt.Sprintf("/v10/finance/quoteSummary/%s?modules=assetProfile,price", info.Ticker)
	var resp quoteSummaryResponse
	if err := c.api.GetJSON(ctx, path, &resp, api.YahooFinanceHeaders()); err != nil {
		logger.Warn(ctx, "Stock metadata lookup failed", "ticker", info.Ticker, "error", err.Error())
		return info
	}
	if resp.QuoteSummary.Error != nil {
		logger.Warn(ctx, "Stock metadata lookup rejected",
			"ticker", info.Ticker,
			"code", resp.QuoteSummary.Error.Code,
		)
		return info
	}
	if len(resp.QuoteSummary.Result) == 0 {
		logger.Warn(ctx, "Stock metadata empty", "ticker", info.Ticker)
		return info
	}

	r := resp.QuoteSummary.Result[0]
	info.CompanyName = r.Price.LongName
	if info.CompanyName == "" {
		info.CompanyName = r.Price.ShortName
	}
	info.Sector = r.AssetProfile.Sector
	info.Industry = r.AssetProfile.Industry
	info.MarketCap = int64(r.Price.MarketCap.Raw)
	info.CurrentPrice = r.Price.RegularMarketPrice.Raw
	info.PreviousClose = r.Price.RegularMarketPreviousClose.Raw
	info.DayChangePercent = r.Price.RegularMarketChangePercent.Raw * 100

	return info
}
