// Package classifier provides the sentiment oracle implementations: a
// FinBERT inference sidecar, an OpenAI chat-completions backend and an
// offline lexicon fallback. All of them honor the same contract: text in,
// bounded score plus label out.
package classifier

import (
	"fmt"
	"strings"

	"stocksentinel/internal/interfaces"
	"stocksentinel/internal/scoring"
	"stocksentinel/internal/store"
)

// New creates the classifier selected by the config provider.
func New(cfg *store.Config) (interfaces.Classifier, error) {
	switch strings.ToUpper(cfg.Classifier.Provider) {
	case "FINBERT":
		return NewFinBERT(cfg.Classifier.Endpoint, cfg.Classifier.LabelThreshold), nil
	case "OPENAI":
		return NewOpenAI(cfg.Classifier.Model, cfg.Classifier.MaxTokens), nil
	case "LEXICON":
		return NewLexicon(cfg.Classifier.LabelThreshold), nil
	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s", cfg.Classifier.Provider)
	}
}

// labelFor converts a continuous score to a label using the classification
// threshold. Scores within [-threshold, threshold] are neutral.
func labelFor(score, threshold float64) scoring.SentimentLabel {
	switch {
	case score > threshold:
		return scoring.LabelPositive
	case score < -threshold:
		return scoring.LabelNegative
	default:
		return scoring.LabelNeutral
	}
}
