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

const newsAPIBaseURL = "https://newsapi.org"

// NewsAPICollector fetches articles from the NewsAPI.org "everything" endpoint.
type NewsAPICollector struct {
	client *api.Client
	apiKey string
}

// NewNewsAPICollector creates a NewsAPI collector. The API key is read from
// the NEWS_API_KEY environment variable; an empty key means Collect returns
// an error so the caller can skip this source.
func NewNewsAPICollector(timeout time.Duration) *NewsAPICollector {
	return &NewsAPICollector{
		client: api.NewClient(
			api.WithBaseURL(newsAPIBaseURL),
			api.WithTimeout(timeout),
		),
		apiKey: os.Getenv("NEWS_API_KEY"),
	}
}

// Name returns the source identifier.
func (c *NewsAPICollector) Name() string {
	return "NEWSAPI"
}

type newsAPIResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
	Code         string           `json:"code"`
	Message      string           `json:"message"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Collect searches for recent articles mentioning the ticker.
func (c *NewsAPICollector) Collect(ctx context.Context, ticker string, days, max int) ([]scoring.Article, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("NEWS_API_KEY not set")
	}

	from := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s stock OR %s shares", ticker, ticker))
	query.Set("from", from)
	query.Set("language", "en")
	query.Set("sortBy", "publishedAt")
	query.Set("pageSize", fmt.Sprintf("%d", max))
	query.Set("apiKey", c.apiKey)

	var resp newsAPIResponse
	if err := c.client.GetJSON(ctx, "/v2/everything?"+query.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("newsapi request failed: %w", err)
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("newsapi error: %s (%s)", resp.Message, resp.Code)
	}

	articles := make([]scoring.Article, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == "" || a.Title == "[Removed]" {
			continue
		}
		articles = append(articles, scoring.Article{
			Title:       a.Title,
			URL:         a.URL,
			Source:      c.Name(),
			PublishedAt: a.PublishedAt,
		})
	}

	logger.Debug(ctx, "NewsAPI articles fetched", "ticker", ticker, "count", len(articles))
	return articles, nil
}
