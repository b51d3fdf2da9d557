// Package analysis orchestrates a full ticker analysis: collect news,
// classify each article's sentiment, score the aggregate and attach stock
// metadata. Results are cached so repeated requests stay cheap.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stocksentinel/internal/interfaces"
	"stocksentinel/internal/logger"
	"stocksentinel/internal/scoring"
	"stocksentinel/internal/stocks"
	"stocksentinel/internal/store"
)

// ErrNoArticles is returned when no source produced any article for the
// ticker. Callers surface it instead of reporting a score built on nothing.
var ErrNoArticles = errors.New("no articles found")

// Recorder persists completed reports. Implementations must tolerate being
// called concurrently.
type Recorder interface {
	Record(ctx context.Context, report *Report) error
}

// StockLookup resolves company metadata for a ticker.
type StockLookup interface {
	Lookup(ctx context.Context, ticker string) stocks.StockInfo
}

// Service runs ticker analyses.
type Service struct {
	collector  interfaces.Collector
	classifier interfaces.Classifier
	engine     *scoring.Engine
	stocks     StockLookup
	recorder   Recorder
	cache      *reportCache
	cfg        *store.Config
}

// NewService wires an analysis service together. recorder may be nil, in
// which case reports are not persisted.
func NewService(cfg *store.Config, collector interfaces.Collector, classifier interfaces.Classifier, stocksClient StockLookup, recorder Recorder) *Service {
	engineCfg := scoring.DefaultConfig()
	if cfg.Scoring.Weights.Sentiment > 0 {
		engineCfg.WeightSentiment = cfg.Scoring.Weights.Sentiment
		engineCfg.WeightConsistency = cfg.Scoring.Weights.Consistency
		engineCfg.WeightVolume = cfg.Scoring.Weights.Volume
		engineCfg.WeightRecency = cfg.Scoring.Weights.Recency
	}
	if cfg.Scoring.Amplification > 0 {
		engineCfg.Amplification = cfg.Scoring.Amplification
	}

	return &Service{
		collector:  collector,
		classifier: classifier,
		engine:     scoring.NewEngine(engineCfg),
		stocks:     stocksClient,
		recorder:   recorder,
		cache:      newReportCache(time.Duration(cfg.Cache.TTLMinutes) * time.Minute),
		cfg:        cfg,
	}
}

// Analyze produces a full report for a ticker. Cached reports are reused
// within the configured TTL.
func (s *Service) Analyze(ctx context.Context, ticker string, days, maxArticles int) (*Report, error) {
	ticker = stocks.FormatTicker(ticker)
	if err := stocks.ValidateTicker(ticker); err != nil {
		return nil, fmt.Errorf("%w: %s", scoring.ErrInvalidTicker, err)
	}

	key := fmt.Sprintf("%s:%d:%d", ticker, days, maxArticles)
	if cached, ok := s.cache.get(key); ok {
		logger.Info(ctx, "Using cached report", "ticker", ticker,
			"age_minutes", time.Since(cached.AnalysisDate).Minutes())
		return cached, nil
	}

	report, err := s.analyzeFresh(ctx, ticker, days, maxArticles)
	if err != nil {
		return nil, err
	}

	s.cache.set(key, report)
	return report, nil
}

// Refresh bypasses the cache and re-runs the analysis.
func (s *Service) Refresh(ctx context.Context, ticker string, days, maxArticles int) (*Report, error) {
	ticker = stocks.FormatTicker(ticker)
	if err := stocks.ValidateTicker(ticker); err != nil {
		return nil, fmt.Errorf("%w: %s", scoring.ErrInvalidTicker, err)
	}

	report, err := s.analyzeFresh(ctx, ticker, days, maxArticles)
	if err != nil {
		return nil, err
	}

	s.cache.set(fmt.Sprintf("%s:%d:%d", ticker, days, maxArticles), report)
	return report, nil
}

func (s *Service) analyzeFresh(ctx context.Context, ticker string, days, maxArticles int) (*Report, error) {
	logger.Info(ctx, "Starting analysis", "ticker", ticker, "days", days, "max_articles", maxArticles)

	articles, err := s.collector.Collect(ctx, ticker, days, maxArticles)
	if err != nil {
		return nil, fmt.Errorf("news collection failed: %w", err)
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoArticles, ticker)
	}

	classified := s.classifyArticles(ctx, ticker, articles)
	if len(classified) == 0 {
		return nil, fmt.Errorf("%w for %s: classification produced no usable articles", ErrNoArticles, ticker)
	}

	asOf := time.Now().UTC()
	result, err := s.engine.Score(ticker, classified, asOf)
	if err != nil {
		return nil, fmt.Errorf("scoring failed: %w", err)
	}

	info := stocks.StockInfo{Ticker: ticker}
	if s.stocks != nil {
		info = s.stocks.Lookup(ctx, ticker)
	}

	report := &Report{
		Ticker:       ticker,
		AnalysisDate: asOf,
		Stock:        info,
		Result:       result,
		TopArticles:  topArticles(classified),
	}

	logger.Recommendation(ctx, ticker,
		string(result.Recommendation), string(result.Confidence),
		result.OverallScore, result.Stats.ArticleCount,
	)

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, report); err != nil {
			logger.Warn(ctx, "Failed to persist report", "ticker", ticker, "error", err.Error())
		}
	}

	return report, nil
}

// classifyArticles runs the classifier over each article and keeps the
// articles that classified successfully. The body text, when a collector
// fetched one, rides along with the headline.
func (s *Service) classifyArticles(ctx context.Context, ticker string, articles []scoring.Article) []scoring.Article {
	classified := make([]scoring.Article, 0, len(articles))
	for _, a := range articles {
		sentiment, err := s.classifier.Classify(ctx, classificationText(a))
		if err != nil {
			logger.Warn(ctx, "Skipping unclassifiable article", "ticker", ticker, "title", a.Title, "error", err.Error())
			continue
		}
		a.SentimentScore = sentiment.Score
		a.SentimentLabel = sentiment.Label
		classified = append(classified, a)
	}
	return classified
}

// classificationText combines headline and body text for the classifier.
func classificationText(a scoring.Article) string {
	if a.Content == "" {
		return a.Title
	}
	return a.Title + "\n\n" + a.Content
}

// ClearCache drops all cached reports.
func (s *Service) ClearCache() {
	s.cache.clear()
}

// CachedKeys returns the cache keys currently held, for diagnostics.
func (s *Service) CachedKeys() []string {
	return s.cache.keys()
}
