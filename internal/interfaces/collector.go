package interfaces

import (
	"context"

	"stocksentinel/internal/scoring"
)

// Collector fetches raw news articles for a ticker from one provider.
// Implementations return articles without sentiment; classification
// happens downstream.
type Collector interface {
	// Collect fetches up to max articles published within the last
	// `days` days.
	Collect(ctx context.Context, ticker string, days, max int) ([]scoring.Article, error)

	// Name identifies the provider for logging and the article Source field.
	Name() string
}
