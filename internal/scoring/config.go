package scoring

import "time"

// Fixed design parameters. Implementations elsewhere must use the same
// values so results stay comparable across deployments.
const (
	// DefaultDispersionNorm is the per-source stddev at which consistency
	// saturates to zero.
	DefaultDispersionNorm = 0.5

	// DefaultMinArticlesForConsistency is the article count below which
	// consistency is forced to zero (too little data to judge agreement).
	DefaultMinArticlesForConsistency = 10

	// DefaultMinAdequateVolume is the article count at which the volume
	// penalty reaches zero. There is no bonus beyond it.
	DefaultMinAdequateVolume = 5

	// DefaultFreshWindow is the article age up to which the recency bonus
	// is at its maximum.
	DefaultFreshWindow = 24 * time.Hour

	// DefaultStaleWindow is the article age at which the recency bonus has
	// fully decayed. Staleness is never penalized below zero.
	DefaultStaleWindow = 168 * time.Hour

	// DefaultAmplification widens the raw weighted score before it is
	// normalized onto the 0-100 scale.
	DefaultAmplification = 1.5
)

// Config holds the scoring weights and thresholds. It is passed into the
// engine explicitly so one process can score tickers with different tuning;
// callers must treat it as immutable after construction.
type Config struct {
	WeightSentiment   float64
	WeightConsistency float64
	WeightVolume      float64
	WeightRecency     float64

	Amplification float64

	DispersionNorm            float64
	MinArticlesForConsistency int
	MinAdequateVolume         int
	FreshWindow               time.Duration
	StaleWindow               time.Duration

	// Confidence tier thresholds. These mirror the volume and consistency
	// component thresholds so confidence and score never contradict.
	HighConfidenceArticles    int
	HighConfidenceConsistency float64
	LowConfidenceArticles     int
}

// DefaultConfig returns the reference scoring configuration. Weights sum
// to 1.0 with sentiment dominating; volume only punishes thin coverage and
// recency is a small freshness bonus.
func DefaultConfig() Config {
	return Config{
		WeightSentiment:   0.70,
		WeightConsistency: 0.15,
		WeightVolume:      0.10,
		WeightRecency:     0.05,

		Amplification: DefaultAmplification,

		DispersionNorm:            DefaultDispersionNorm,
		MinArticlesForConsistency: DefaultMinArticlesForConsistency,
		MinAdequateVolume:         DefaultMinAdequateVolume,
		FreshWindow:               DefaultFreshWindow,
		StaleWindow:               DefaultStaleWindow,

		HighConfidenceArticles:    20,
		HighConfidenceConsistency: 0.5,
		LowConfidenceArticles:     10,
	}
}
