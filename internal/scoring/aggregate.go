package scoring

import (
	"gonum.org/v1/gonum/stat"
)

// Aggregate reduces a set of articles into summary statistics. It is a
// pure function: no ordering requirement on the input, no side effects.
// An empty input yields zero-value stats, which is valid "no data" state
// rather than an error.
//
// Ratios are computed from labels as supplied by the classifier, never
// re-derived from scores: label and score may come from different upstream
// paths and the label is trusted as given.
func Aggregate(articles []Article) Stats {
	stats := Stats{
		PerSourceMean: map[string]float64{},
	}
	if len(articles) == 0 {
		return stats
	}

	scores := make([]float64, 0, len(articles))
	bySource := map[string][]float64{}
	var positive, negative, neutral int

	for _, a := range articles {
		scores = append(scores, a.SentimentScore)
		bySource[a.Source] = append(bySource[a.Source], a.SentimentScore)

		switch a.SentimentLabel {
		case LabelPositive:
			positive++
		case LabelNegative:
			negative++
		default:
			neutral++
		}

		if a.PublishedAt.After(stats.LatestPublishedAt) {
			stats.LatestPublishedAt = a.PublishedAt
		}
	}

	total := float64(len(articles))
	stats.ArticleCount = len(articles)
	stats.SourceCount = len(bySource)
	stats.MeanScore = stat.Mean(scores, nil)
	stats.PositiveRatio = float64(positive) / total
	stats.NegativeRatio = float64(negative) / total
	stats.NeutralRatio = float64(neutral) / total

	for source, sourceScores := range bySource {
		stats.PerSourceMean[source] = stat.Mean(sourceScores, nil)
	}

	return stats
}
