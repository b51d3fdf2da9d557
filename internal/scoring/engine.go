// Package scoring turns a set of sentiment-labeled news articles about a
// ticker into a bounded 0-100 score, a recommendation label and a
// confidence tier. The computation is pure and synchronous: no I/O, no
// shared state, no clock reads beyond the explicit asOf argument, so
// identical inputs always produce identical results and concurrent calls
// need no coordination.
package scoring

import (
	"errors"
	"math"
	"strings"
	"time"
)

// ErrInvalidTicker is returned when the ticker is empty or blank.
var ErrInvalidTicker = errors.New("invalid ticker: must be non-empty")

// Engine scores tickers with a fixed configuration.
type Engine struct {
	cfg Config
}

// NewEngine creates a scoring engine. The zero-valued config is replaced
// with the reference defaults; a partially filled config is the caller's
// responsibility.
func NewEngine(cfg Config) *Engine {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine's scoring configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Score aggregates the articles, computes the four sub-scores and maps
// them to the final result. Zero articles is not an error: the engine
// returns a valid result with the maximal volume penalty, which lands
// near the HOLD band.
//
// Out-of-range sentiment scores are clamped to [-1, 1] rather than
// rejected: the classifier is trusted to deliver bounded scores, and
// clamping keeps the pipeline total over slightly malformed input.
func (e *Engine) Score(ticker string, articles []Article, asOf time.Time) (Result, error) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return Result{}, ErrInvalidTicker
	}

	stats := Aggregate(clampArticles(articles))
	components := e.scoreComponents(stats, asOf)
	score := e.normalize(components)

	return Result{
		Ticker:         ticker,
		AsOf:           asOf,
		OverallScore:   score,
		Recommendation: recommend(score),
		Confidence:     e.confidence(stats.ArticleCount, components.Consistency),
		Components:     components,
		Stats:          stats,
	}, nil
}

// clampArticles bounds every sentiment score to [-1, 1]. NaN scores count
// as neutral: clamping has no defensible answer for them and they must not
// reach the mean, where a single NaN would poison the whole result. The
// input slice is never mutated; a copy is made only when some score needs
// fixing.
func clampArticles(articles []Article) []Article {
	clamped := articles
	copied := false
	for i, a := range articles {
		if a.SentimentScore >= -1.0 && a.SentimentScore <= 1.0 {
			continue
		}
		if !copied {
			clamped = make([]Article, len(articles))
			copy(clamped, articles)
			copied = true
		}
		score := clamp(a.SentimentScore, -1.0, 1.0)
		if math.IsNaN(score) {
			score = 0.0
		}
		clamped[i].SentimentScore = score
	}
	return clamped
}
