package scoring

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// scoreComponents computes the four sub-scores from aggregate statistics.
// Each component is bounded to [-1, 1].
func (e *Engine) scoreComponents(stats Stats, asOf time.Time) Components {
	return Components{
		Sentiment:   stats.MeanScore,
		Consistency: e.scoreConsistency(stats),
		Volume:      e.scoreVolume(stats.ArticleCount),
		Recency:     e.scoreRecency(stats.LatestPublishedAt, asOf),
	}
}

// scoreConsistency measures agreement across distinct sources. Below the
// minimum article count there is not enough data to judge agreement and
// the component is forced to zero regardless of actual dispersion.
func (e *Engine) scoreConsistency(stats Stats) float64 {
	if stats.ArticleCount < e.cfg.MinArticlesForConsistency {
		return 0.0
	}

	means := make([]float64, 0, len(stats.PerSourceMean))
	for _, m := range stats.PerSourceMean {
		means = append(means, m)
	}

	stddev := stat.PopStdDev(means, nil)
	consistency := 1.0 - math.Min(1.0, stddev/e.cfg.DispersionNorm)

	return clamp(consistency, -1.0, 1.0)
}

// scoreVolume penalizes thin coverage. Zero articles is the maximal
// penalty; the penalty decays linearly and vanishes at the adequacy
// floor. Coverage beyond the floor earns no bonus.
func (e *Engine) scoreVolume(articleCount int) float64 {
	vmin := e.cfg.MinAdequateVolume
	switch {
	case articleCount == 0:
		return -1.0
	case articleCount >= vmin:
		return 0.0
	default:
		return -float64(vmin-articleCount) / float64(vmin-1)
	}
}

// scoreRecency awards a small bonus for fresh coverage: full bonus within
// the fresh window, linear decay to zero at the stale window. Staleness is
// never penalized beyond losing the bonus.
func (e *Engine) scoreRecency(latest, asOf time.Time) float64 {
	if latest.IsZero() {
		return 0.0
	}

	age := asOf.Sub(latest)
	switch {
	case age <= e.cfg.FreshWindow:
		return 1.0
	case age >= e.cfg.StaleWindow:
		return 0.0
	default:
		remaining := e.cfg.StaleWindow - age
		return float64(remaining) / float64(e.cfg.StaleWindow-e.cfg.FreshWindow)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
