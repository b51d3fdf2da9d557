package classifierobs

import (
	"context"

	"stocksentinel/internal/interfaces"
	"stocksentinel/internal/logger"
	"stocksentinel/internal/scoring"
	"stocksentinel/internal/trace"
)

// observableClassifier wraps a Classifier with observability (logging & tracing)
type observableClassifier struct {
	classifier interfaces.Classifier
}

// Compile-time interface check
var _ interfaces.Classifier = (*observableClassifier)(nil)

// Wrap wraps a classifier with observability middleware
func Wrap(classifier interfaces.Classifier) interfaces.Classifier {
	return &observableClassifier{
		classifier: classifier,
	}
}

// Classify scores a piece of text with observability
func (oc *observableClassifier) Classify(ctx context.Context, text string) (scoring.Sentiment, error) {
	ctx, span := trace.StartSpan(ctx, "classifier.Classify")
	defer span.End()

	logger.Debug(ctx, "Classifying text", "chars", len(text))

	sentiment, err := oc.classifier.Classify(ctx, text)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to classify text", err, "chars", len(text))
		return scoring.Sentiment{}, err
	}

	logger.Debug(ctx, "Text classified",
		"score", sentiment.Score,
		"label", sentiment.Label,
	)
	return sentiment, nil
}
