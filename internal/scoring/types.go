package scoring

import "time"

// SentimentLabel is the discrete class assigned by the external classifier.
// The engine consumes it as-is and never re-derives it from the score.
type SentimentLabel string

const (
	LabelPositive SentimentLabel = "positive"
	LabelNegative SentimentLabel = "negative"
	LabelNeutral  SentimentLabel = "neutral"
)

// Article is one normalized news item plus its sentiment signal.
// Title, URL and Content are carried for classification and reporting
// only; the scoring math ignores them.
type Article struct {
	Title          string         `json:"title"`
	URL            string         `json:"url"`
	Source         string         `json:"source"`
	Content        string         `json:"-"` // body text for classification, not persisted
	PublishedAt    time.Time      `json:"published_at"`
	SentimentScore float64        `json:"sentiment_score"` // [-1, 1]
	SentimentLabel SentimentLabel `json:"sentiment_label"`
}

// Sentiment is the classifier output for a single text.
type Sentiment struct {
	Score float64        `json:"score"` // [-1, 1]
	Label SentimentLabel `json:"label"`
}

// Stats is the aggregate view of a set of articles. It is derived and
// ephemeral; downstream components read it, nothing persists it.
type Stats struct {
	MeanScore         float64            `json:"mean_score"`
	PositiveRatio     float64            `json:"positive_ratio"`
	NegativeRatio     float64            `json:"negative_ratio"`
	NeutralRatio      float64            `json:"neutral_ratio"`
	ArticleCount      int                `json:"article_count"`
	SourceCount       int                `json:"source_count"`
	PerSourceMean     map[string]float64 `json:"per_source_mean"`
	LatestPublishedAt time.Time          `json:"latest_published_at"`
}

// Components holds the four weighted sub-scores, each in [-1, 1].
type Components struct {
	Sentiment   float64 `json:"sentiment"`
	Consistency float64 `json:"consistency"`
	Volume      float64 `json:"volume"`
	Recency     float64 `json:"recency"`
}

// Recommendation labels, strongest buy to strongest sell.
type Recommendation string

const (
	StrongBuy  Recommendation = "STRONG_BUY"
	Buy        Recommendation = "BUY"
	WeakBuy    Recommendation = "WEAK_BUY"
	Hold       Recommendation = "HOLD"
	WeakSell   Recommendation = "WEAK_SELL"
	Sell       Recommendation = "SELL"
	StrongSell Recommendation = "STRONG_SELL"
)

// Confidence is the qualitative reliability tier of a recommendation.
type Confidence string

const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

// Result is the immutable outcome of one scoring run. It is constructed
// once per invocation and never mutated.
type Result struct {
	Ticker         string         `json:"ticker"`
	AsOf           time.Time      `json:"as_of"`
	OverallScore   float64        `json:"overall_score"` // [0, 100]
	Recommendation Recommendation `json:"recommendation"`
	Confidence     Confidence     `json:"confidence"`
	Components     Components     `json:"components"`
	Stats          Stats          `json:"stats"`
}
