package scoring

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// uniformArticles builds n articles spread over the given sources, all with
// the same sentiment score, published two hours before asOf.
func uniformArticles(n int, sources int, score float64) []Article {
	label := LabelNeutral
	if score > 0.3 {
		label = LabelPositive
	} else if score < -0.3 {
		label = LabelNegative
	}

	articles := make([]Article, n)
	for i := range articles {
		articles[i] = Article{
			Source:         fmt.Sprintf("source-%d", i%sources),
			PublishedAt:    asOf.Add(-2 * time.Hour),
			SentimentScore: score,
			SentimentLabel: label,
		}
	}
	return articles
}

func TestScoreRejectsBlankTicker(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	for _, ticker := range []string{"", "   ", "\t"} {
		_, err := engine.Score(ticker, nil, asOf)
		assert.ErrorIs(t, err, ErrInvalidTicker, "ticker %q", ticker)
	}
}

func TestScoreEmptyArticles(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	result, err := engine.Score("AAPL", nil, asOf)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Components.Sentiment)
	assert.Equal(t, 0.0, result.Components.Consistency)
	assert.Equal(t, -1.0, result.Components.Volume)
	assert.Equal(t, 0.0, result.Components.Recency)
	assert.Equal(t, ConfidenceLow, result.Confidence)

	// Zero data yields only the volume penalty: (-1*0.10*1.5 + 1) * 50.
	assert.InDelta(t, 42.5, result.OverallScore, 1e-9)

	again, err := engine.Score("AAPL", nil, asOf)
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestScoreBounds(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	cases := []struct {
		name     string
		articles []Article
	}{
		{"maximally bullish", uniformArticles(50, 10, 1.0)},
		{"maximally bearish", uniformArticles(50, 10, -1.0)},
		{"single article", uniformArticles(1, 1, 0.9)},
		{"neutral", uniformArticles(20, 4, 0.0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := engine.Score("TSLA", tc.articles, asOf)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.OverallScore, 0.0)
			assert.LessOrEqual(t, result.OverallScore, 100.0)
		})
	}
}

func TestScoreClampAbsorbsAmplification(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	// Fully bullish fresh coverage with perfect agreement amplifies far
	// beyond 100 before the clamp.
	result, err := engine.Score("NVDA", uniformArticles(50, 10, 1.0), asOf)
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.OverallScore)
	assert.Equal(t, StrongBuy, result.Recommendation)

	result, err = engine.Score("NVDA", uniformArticles(50, 10, -1.0), asOf)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, StrongSell, result.Recommendation)
}

func TestScoreMonotonicInMeanSentiment(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	prev := -1.0
	for _, mean := range []float64{-1.0, -0.6, -0.3, -0.1, 0.0, 0.1, 0.3, 0.6, 1.0} {
		result, err := engine.Score("MSFT", uniformArticles(12, 3, mean), asOf)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.OverallScore, prev,
			"overall score decreased when mean sentiment rose to %v", mean)
		prev = result.OverallScore
	}
}

func TestRecommendationThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  Recommendation
	}{
		{100, StrongBuy},
		{70.0, StrongBuy},
		{69.999, Buy},
		{60.0, Buy},
		{59.999, WeakBuy},
		{55.0, WeakBuy},
		{54.999, Hold},
		{45.0, Hold},
		{44.999, WeakSell},
		{40.0, WeakSell},
		{39.999, Sell},
		{30.0, Sell},
		{29.999, StrongSell},
		{0, StrongSell},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, recommend(tc.score), "score %v", tc.score)
	}
}

func TestConsistencyRequiresMinimumArticles(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	// Nine perfectly agreeing sources are still below the article floor.
	result, err := engine.Score("GOOG", uniformArticles(9, 9, 0.5), asOf)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Components.Consistency)

	// The tenth article unlocks the consistency computation.
	result, err = engine.Score("GOOG", uniformArticles(10, 10, 0.5), asOf)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Components.Consistency, 1e-9)
}

func TestConsistencySaturatesOnDispersion(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	// Two sources at +1 and -1 have a per-source stddev of 1.0, well past
	// the 0.5 normalization constant.
	articles := append(uniformArticles(6, 1, 1.0), uniformArticles(6, 1, -1.0)...)
	for i := 6; i < 12; i++ {
		articles[i].Source = "other"
	}

	result, err := engine.Score("AMZN", articles, asOf)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Components.Consistency)
}

func TestVolumeComponent(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	assert.Equal(t, -1.0, engine.scoreVolume(0))
	assert.Equal(t, -1.0, engine.scoreVolume(1))
	assert.Equal(t, 0.0, engine.scoreVolume(5))
	assert.Equal(t, 0.0, engine.scoreVolume(50))

	v := engine.scoreVolume(3)
	assert.Greater(t, v, -1.0)
	assert.Less(t, v, 0.0)
	assert.InDelta(t, -0.5, v, 1e-9)
}

func TestRecencyComponent(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	cases := []struct {
		age  time.Duration
		want float64
	}{
		{2 * time.Hour, 1.0},
		{24 * time.Hour, 1.0},
		{96 * time.Hour, 0.5},
		{168 * time.Hour, 0.0},
		{24 * 14 * time.Hour, 0.0},
	}

	for _, tc := range cases {
		got := engine.scoreRecency(asOf.Add(-tc.age), asOf)
		assert.InDelta(t, tc.want, got, 1e-9, "age %v", tc.age)
	}

	// No articles means no bonus, not a penalty.
	assert.Equal(t, 0.0, engine.scoreRecency(time.Time{}, asOf))
}

func TestScoreReferenceScenario(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	// 50 articles across 10 sources, overall mean 0.342 with a per-source
	// stddev of 0.2165 (consistency 0.567), adequate volume, latest
	// article two hours old.
	articles := make([]Article, 0, 50)
	for s := 0; s < 10; s++ {
		score := 0.342 + 0.2165
		if s >= 5 {
			score = 0.342 - 0.2165
		}
		src := fmt.Sprintf("outlet-%d", s)
		for i := 0; i < 5; i++ {
			articles = append(articles, Article{
				Source:         src,
				PublishedAt:    asOf.Add(-2 * time.Hour),
				SentimentScore: score,
				SentimentLabel: LabelPositive,
			})
		}
	}

	result, err := engine.Score("AAPL", articles, asOf)
	require.NoError(t, err)

	assert.InDelta(t, 0.342, result.Components.Sentiment, 1e-9)
	assert.InDelta(t, 0.567, result.Components.Consistency, 1e-9)
	assert.Equal(t, 0.0, result.Components.Volume)
	assert.Equal(t, 1.0, result.Components.Recency)

	// (0.70*0.342 + 0.15*0.567 + 0.05*1.0) * 1.5 -> (0.561675 + 1) * 50
	assert.InDelta(t, 78.08, result.OverallScore, 0.01)
	assert.Equal(t, StrongBuy, result.Recommendation)
	assert.Equal(t, ConfidenceHigh, result.Confidence)
}

func TestScoreIdempotent(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	articles := uniformArticles(25, 7, 0.42)

	first, err := engine.Score("META", articles, asOf)
	require.NoError(t, err)
	second, err := engine.Score("META", articles, asOf)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScoreClampsOutOfRangeInput(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	articles := []Article{
		{Source: "a", PublishedAt: asOf.Add(-time.Hour), SentimentScore: 1.7, SentimentLabel: LabelPositive},
		{Source: "b", PublishedAt: asOf.Add(-time.Hour), SentimentScore: -2.3, SentimentLabel: LabelNegative},
	}

	result, err := engine.Score("IBM", articles, asOf)
	require.NoError(t, err)

	// 1.7 and -2.3 clamp to +1 and -1, so the mean is zero.
	assert.InDelta(t, 0.0, result.Components.Sentiment, 1e-9)

	// The caller's slice is left untouched.
	assert.Equal(t, 1.7, articles[0].SentimentScore)
	assert.Equal(t, -2.3, articles[1].SentimentScore)
}

func TestScoreNaNSentimentNeutralized(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	articles := []Article{
		{Source: "a", PublishedAt: asOf.Add(-time.Hour), SentimentScore: math.NaN(), SentimentLabel: LabelNeutral},
		{Source: "b", PublishedAt: asOf.Add(-time.Hour), SentimentScore: 0.5, SentimentLabel: LabelPositive},
	}

	result, err := engine.Score("IBM", articles, asOf)
	require.NoError(t, err)

	// NaN counts as neutral: the mean is 0.25, not NaN.
	assert.False(t, math.IsNaN(result.Components.Sentiment))
	assert.InDelta(t, 0.25, result.Components.Sentiment, 1e-9)

	assert.False(t, math.IsNaN(result.OverallScore))
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)

	// The caller's slice is left untouched.
	assert.True(t, math.IsNaN(articles[0].SentimentScore))
}

func TestScoreInfiniteSentimentClamped(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	articles := []Article{
		{Source: "a", PublishedAt: asOf.Add(-time.Hour), SentimentScore: math.Inf(1), SentimentLabel: LabelPositive},
		{Source: "b", PublishedAt: asOf.Add(-time.Hour), SentimentScore: math.Inf(-1), SentimentLabel: LabelNegative},
	}

	result, err := engine.Score("IBM", articles, asOf)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, result.Components.Sentiment, 1e-9)
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
}

func TestConfidenceTiers(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	cases := []struct {
		articles    int
		consistency float64
		want        Confidence
	}{
		{50, 0.8, ConfidenceHigh},
		{20, 0.5, ConfidenceHigh},
		{19, 0.9, ConfidenceMedium},
		{20, 0.49, ConfidenceMedium},
		{15, 0.2, ConfidenceMedium},
		{9, 0.9, ConfidenceLow},
		{0, 0.0, ConfidenceLow},
		{30, -0.1, ConfidenceLow},
	}

	for _, tc := range cases {
		got := engine.confidence(tc.articles, tc.consistency)
		assert.Equal(t, tc.want, got, "articles=%d consistency=%v", tc.articles, tc.consistency)
	}
}

func TestZeroConfigUsesDefaults(t *testing.T) {
	engine := NewEngine(Config{})
	assert.Equal(t, DefaultConfig(), engine.Config())
}
