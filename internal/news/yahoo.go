package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"stocksentinel/internal/logger"
	"stocksentinel/internal/scoring"
)

// YahooCollector scrapes the news tab of a Yahoo Finance quote page.
// Unlike the API-backed collectors it needs no credentials, which makes it
// the source that always runs.
type YahooCollector struct {
	timeout time.Duration
}

// NewYahooCollector creates a Yahoo Finance news scraper.
func NewYahooCollector(timeout time.Duration) *YahooCollector {
	return &YahooCollector{timeout: timeout}
}

// Name returns the source identifier.
func (c *YahooCollector) Name() string {
	return "YAHOO"
}

// Collect scrapes headlines from the quote page's news stream. Yahoo does
// not expose publish dates in the listing, so articles carry a zero
// PublishedAt and the lookback window is not enforced here.
func (c *YahooCollector) Collect(ctx context.Context, ticker string, _, max int) ([]scoring.Article, error) {
	articles := []scoring.Article{}

	collector := colly.NewCollector(
		colly.AllowedDomains("finance.yahoo.com"),
		colly.MaxDepth(1),
		colly.Async(false),
	)
	collector.SetRequestTimeout(c.timeout)

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	})

	collector.OnHTML("li.stream-item, div.news-stream li", func(e *colly.HTMLElement) {
		if len(articles) >= max {
			return
		}

		title := strings.TrimSpace(e.ChildText("h3"))
		if title == "" {
			return
		}

		articleURL := e.ChildAttr("a", "href")
		if articleURL == "" {
			return
		}
		if !strings.HasPrefix(articleURL, "http") {
			articleURL = "https://finance.yahoo.com" + articleURL
		}

		articles = append(articles, scoring.Article{
			Title:  title,
			URL:    articleURL,
			Source: c.Name(),
		})
	})

	collector.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scraping error", err, "source", c.Name(), "url", r.Request.URL.String())
	})

	quoteURL := fmt.Sprintf("https://finance.yahoo.com/quote/%s/news", ticker)
	if err := collector.Visit(quoteURL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", quoteURL, err)
	}
	collector.Wait()

	articles = c.enrichArticles(ctx, articles)

	logger.Debug(ctx, "Yahoo articles scraped", "ticker", ticker, "count", len(articles))
	return articles, nil
}

// enrichArticles fetches body text for scraped articles. A headline alone
// is a thin classification input, so every article below the content floor
// gets one fetch attempt, rate-limited between requests.
func (c *YahooCollector) enrichArticles(ctx context.Context, articles []scoring.Article) []scoring.Article {
	enriched := make([]scoring.Article, len(articles))
	copy(enriched, articles)

	for i := range enriched {
		if len(enriched[i].Content) >= minContentChars {
			continue
		}
		if body := c.FetchArticleText(ctx, enriched[i].URL); body != "" {
			if len(body) > maxContentChars {
				body = body[:maxContentChars]
			}
			enriched[i].Content = body
		}

		// Rate limiting between article fetches
		time.Sleep(500 * time.Millisecond)
	}

	return enriched
}

const (
	minContentChars = 100
	maxContentChars = 2000
)

// FetchArticleText fetches the body text of an article page. Used when a
// headline alone is too thin for classification.
func (c *YahooCollector) FetchArticleText(ctx context.Context, articleURL string) string {
	collector := colly.NewCollector()
	collector.SetRequestTimeout(c.timeout)

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	var content string
	collector.OnHTML("article, div.article-body, div.caas-body", func(e *colly.HTMLElement) {
		content = extractParagraphs(e.DOM)
	})

	if err := collector.Visit(articleURL); err != nil {
		logger.ErrorWithErr(ctx, "Failed to fetch article content", err, "url", articleURL)
		return ""
	}

	return content
}

// extractParagraphs joins the meaningful paragraph text of an article body,
// skipping boilerplate fragments.
func extractParagraphs(sel *goquery.Selection) string {
	paragraphs := []string{}
	sel.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if len(text) > 20 {
			paragraphs = append(paragraphs, text)
		}
	})
	return strings.Join(paragraphs, "\n\n")
}
