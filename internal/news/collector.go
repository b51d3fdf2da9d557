// Package news collects recent articles about a ticker from multiple
// sources. Each source implements interfaces.Collector; MultiCollector fans
// out across them, tolerating individual source failures so one broken feed
// never blanks out an analysis.
package news

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"stocksentinel/internal/interfaces"
	"stocksentinel/internal/logger"
	"stocksentinel/internal/scoring"
	"stocksentinel/internal/store"
)

// MultiCollector aggregates articles from several sources, deduplicates by
// title and returns the newest articles first.
type MultiCollector struct {
	sources []interfaces.Collector
}

// Compile-time interface check
var _ interfaces.Collector = (*MultiCollector)(nil)

// NewMultiCollector creates a collector over the given sources.
func NewMultiCollector(sources ...interfaces.Collector) *MultiCollector {
	return &MultiCollector{sources: sources}
}

// FromConfig builds a MultiCollector from the configured source names.
func FromConfig(cfg *store.Config) (*MultiCollector, error) {
	timeout := time.Duration(cfg.News.ScraperTimeoutSeconds) * time.Second

	sources := make([]interfaces.Collector, 0, len(cfg.News.Sources))
	for _, name := range cfg.News.Sources {
		switch name {
		case "NEWSAPI":
			sources = append(sources, NewNewsAPICollector(timeout))
		case "FINNHUB":
			sources = append(sources, NewFinnhubCollector(timeout))
		case "YAHOO":
			sources = append(sources, NewYahooCollector(timeout))
		default:
			return nil, fmt.Errorf("unknown news source: %s", name)
		}
	}
	return NewMultiCollector(sources...), nil
}

// Name returns the source identifier.
func (m *MultiCollector) Name() string {
	return "MULTI"
}

// Collect fetches from every source, skipping sources that fail, then
// deduplicates, sorts newest-first and caps the result at max.
func (m *MultiCollector) Collect(ctx context.Context, ticker string, days, max int) ([]scoring.Article, error) {
	logger.Info(ctx, "Collecting news", "ticker", ticker, "sources", len(m.sources), "days", days)

	all := []scoring.Article{}
	for _, source := range m.sources {
		articles, err := source.Collect(ctx, ticker, days, max)
		if err != nil {
			logger.Warn(ctx, "News source failed, skipping", "source", source.Name(), "ticker", ticker, "error", err.Error())
			continue
		}
		all = append(all, articles...)
	}

	all = dedupeByTitle(all)
	sortNewestFirst(all)
	if len(all) > max {
		all = all[:max]
	}

	logger.Info(ctx, "News collection completed", "ticker", ticker, "articles", len(all))
	return all, nil
}

// dedupeByTitle drops articles whose normalized title was already seen.
// The first occurrence wins, so source order decides which copy survives.
func dedupeByTitle(articles []scoring.Article) []scoring.Article {
	seen := make(map[string]bool, len(articles))
	out := articles[:0]
	for _, a := range articles {
		key := normalizeTitle(a.Title)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}

func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// sortNewestFirst orders by publish time descending. Articles without a
// publish time (scraped sources) sort after dated ones.
func sortNewestFirst(articles []scoring.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		ti, tj := articles[i].PublishedAt, articles[j].PublishedAt
		if ti.IsZero() != tj.IsZero() {
			return !ti.IsZero()
		}
		return ti.After(tj)
	})
}
