package interfaces

import (
	"context"

	"stocksentinel/internal/scoring"
)

// Classifier is the sentiment oracle. Given text it returns a continuous
// score in [-1, 1] and a discrete label; the engine never looks behind
// this interface.
type Classifier interface {
	Classify(ctx context.Context, text string) (scoring.Sentiment, error)
}
