package news

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"stocksentinel/internal/api"
	"stocksentinel/internal/logger"
	"stocksentinel/internal/scoring"
)

const finnhubBaseURL = "https://finnhub.io"

// FinnhubCollector fetches company news from the Finnhub API.
type FinnhubCollector struct {
	client *api.Client
	apiKey string
}

// NewFinnhubCollector creates a Finnhub collector. The API key is read from
// the FINNHUB_API_KEY environment variable.
func NewFinnhubCollector(timeout time.Duration) *FinnhubCollector {
	return &FinnhubCollector{
		client: api.NewClient(
			api.WithBaseURL(finnhubBaseURL),
			api.WithTimeout(timeout),
		),
		apiKey: os.Getenv("FINNHUB_API_KEY"),
	}
}

// Name returns the source identifier.
func (c *FinnhubCollector) Name() string {
	return "FINNHUB"
}

type finnhubArticle struct {
	Datetime int64  `json:"datetime"` // unix seconds
	Headline string `json:"headline"`
	Source   string `json:"source"`
	URL      string `json:"url"`
}

// Collect fetches company news for the ticker over the lookback window.
func (c *FinnhubCollector) Collect(ctx context.Context, ticker string, days, max int) ([]scoring.Article, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("FINNHUB_API_KEY not set")
	}

	now := time.Now().UTC()
	query := url.Values{}
	query.Set("symbol", ticker)
	query.Set("from", now.AddDate(0, 0, -days).Format("2006-01-02"))
	query.Set("to", now.Format("2006-01-02"))
	query.Set("token", c.apiKey)

	var resp []finnhubArticle
	if err := c.client.GetJSON(ctx, "/api/v1/company-news?"+query.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("finnhub request failed: %w", err)
	}

	articles := make([]scoring.Article, 0, len(resp))
	for _, a := range resp {
		if a.Headline == "" {
			continue
		}
		if len(articles) >= max {
			break
		}
		articles = append(articles, scoring.Article{
			Title:       a.Headline,
			URL:         a.URL,
			Source:      c.Name(),
			PublishedAt: time.Unix(a.Datetime, 0).UTC(),
		})
	}

	logger.Debug(ctx, "Finnhub articles fetched", "ticker", ticker, "count", len(articles))
	return articles, nil
}
