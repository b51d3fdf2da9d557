package analysis

import (
	"math"
	"sort"
	"time"

	"stocksentinel/internal/scoring"
	"stocksentinel/internal/stocks"
)

// Report is the full output of a ticker analysis.
type Report struct {
	Ticker       string            `json:"ticker"`
	AnalysisDate time.Time         `json:"analysis_date"`
	Stock        stocks.StockInfo  `json:"stock"`
	Result       scoring.Result    `json:"result"`
	TopArticles  []scoring.Article `json:"top_articles"`
}

const topArticleCount = 5

// topArticles returns up to five articles ranked by sentiment strength, so
// the report surfaces the stories that moved the score most.
func topArticles(articles []scoring.Article) []scoring.Article {
	ranked := make([]scoring.Article, len(articles))
	copy(ranked, articles)

	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].SentimentScore) > math.Abs(ranked[j].SentimentScore)
	})

	if len(ranked) > topArticleCount {
		ranked = ranked[:topArticleCount]
	}
	return ranked
}
