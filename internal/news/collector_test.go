package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocksentinel/internal/scoring"
	"stocksentinel/internal/store"
)

type stubCollector struct {
	name     string
	articles []scoring.Article
	err      error
}

func (s *stubCollector) Name() string { return s.name }

func (s *stubCollector) Collect(_ context.Context, _ string, _, _ int) ([]scoring.Article, error) {
	return s.articles, s.err
}

func TestMultiCollectorSkipsFailedSource(t *testing.T) {
	good := &stubCollector{
		name: "GOOD",
		articles: []scoring.Article{
			{Title: "Alpha earnings beat", Source: "GOOD", PublishedAt: time.Now()},
		},
	}
	bad := &stubCollector{name: "BAD", err: errors.New("connection refused")}

	mc := NewMultiCollector(bad, good)
	got, err := mc.Collect(context.Background(), "AAPL", 7, 50)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alpha earnings beat", got[0].Title)
}

func TestMultiCollectorDeduplicatesTitles(t *testing.T) {
	first := &stubCollector{
		name: "A",
		articles: []scoring.Article{
			{Title: "Apple Hits Record High", Source: "A"},
			{Title: "Unique story", Source: "A"},
		},
	}
	second := &stubCollector{
		name: "B",
		articles: []scoring.Article{
			{Title: "  apple hits   record high ", Source: "B"},
		},
	}

	mc := NewMultiCollector(first, second)
	got, err := mc.Collect(context.Background(), "AAPL", 7, 50)

	require.NoError(t, err)
	require.Len(t, got, 2)
	// First occurrence wins.
	assert.Equal(t, "A", got[0].Source)
	assert.Equal(t, "A", got[1].Source)
}

func TestMultiCollectorSortsNewestFirst(t *testing.T) {
	now := time.Now().UTC()
	src := &stubCollector{
		name: "A",
		articles: []scoring.Article{
			{Title: "old", PublishedAt: now.Add(-48 * time.Hour)},
			{Title: "undated"},
			{Title: "new", PublishedAt: now.Add(-1 * time.Hour)},
		},
	}

	mc := NewMultiCollector(src)
	got, err := mc.Collect(context.Background(), "TSLA", 7, 50)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].Title)
	assert.Equal(t, "old", got[1].Title)
	assert.Equal(t, "undated", got[2].Title)
}

func TestMultiCollectorCapsAtMax(t *testing.T) {
	articles := make([]scoring.Article, 10)
	for i := range articles {
		articles[i] = scoring.Article{
			Title:       "story " + string(rune('a'+i)),
			PublishedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		}
	}
	src := &stubCollector{name: "A", articles: articles}

	mc := NewMultiCollector(src)
	got, err := mc.Collect(context.Background(), "MSFT", 7, 3)

	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "story a", got[0].Title)
}

func TestMultiCollectorAllSourcesFail(t *testing.T) {
	mc := NewMultiCollector(
		&stubCollector{name: "A", err: errors.New("down")},
		&stubCollector{name: "B", err: errors.New("down")},
	)

	got, err := mc.Collect(context.Background(), "NVDA", 7, 50)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFromConfigKnownSources(t *testing.T) {
	cfg := &store.Config{}
	cfg.News.Sources = []string{"NEWSAPI", "FINNHUB", "YAHOO"}
	cfg.News.ScraperTimeoutSeconds = 30

	mc, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.Len(t, mc.sources, 3)
}

func TestFromConfigRejectsUnknownSource(t *testing.T) {
	cfg := &store.Config{}
	cfg.News.Sources = []string{"BLOOMBERG"}

	_, err := FromConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown news source")
}
