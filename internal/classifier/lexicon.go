package classifier

import (
	"context"
	"math"
	"strings"
	"unicode"

	"stocksentinel/internal/scoring"
)

// Lexicon is an offline word-list classifier. It is far weaker than the
// model backends but deterministic and dependency-free, which makes it the
// default for development and the fallback when no model is configured.
type Lexicon struct {
	positive    map[string]bool
	negative    map[string]bool
	uncertainty map[string]bool
	threshold   float64
}

// NewLexicon creates a lexicon classifier with the built-in financial
// word lists.
func NewLexicon(threshold float64) *Lexicon {
	return &Lexicon{
		positive:    wordSet(positiveWords),
		negative:    wordSet(negativeWords),
		uncertainty: wordSet(uncertaintyWords),
		threshold:   threshold,
	}
}

// Classify scores the text by the balance of positive versus negative
// vocabulary, dampened by hedging language.
func (l *Lexicon) Classify(_ context.Context, text string) (scoring.Sentiment, error) {
	words := tokenize(strings.ToLower(text))
	if len(words) == 0 {
		return scoring.Sentiment{Label: scoring.LabelNeutral}, nil
	}

	var positive, negative, uncertain int
	for _, w := range words {
		if l.positive[w] {
			positive++
		}
		if l.negative[w] {
			negative++
		}
		if l.uncertainty[w] {
			uncertain++
		}
	}

	total := float64(len(words))
	net := (float64(positive) - float64(negative)) / total

	// Typical finance prose carries only a few percent of charged words,
	// so the net ratio is amplified before clamping. Hedging language
	// dampens the already-bounded score so it always pulls toward neutral.
	score := math.Max(-1.0, math.Min(1.0, net*10))
	uncertaintyRatio := math.Min(float64(uncertain)/total*20, 1.0)
	score *= 1.0 - uncertaintyRatio*0.5

	return scoring.Sentiment{
		Score: score,
		Label: labelFor(score, l.threshold),
	}, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var positiveWords = []string{
	"growth", "profit", "profitable", "gain", "gains", "surge", "surged",
	"rally", "rallied", "record", "beat", "beats", "exceeded", "strong",
	"stronger", "robust", "upgrade", "upgraded", "outperform", "bullish",
	"momentum", "expansion", "improved", "improvement", "accelerating",
	"breakthrough", "partnership", "dividend", "buyback", "innovative",
	"success", "successful", "soar", "soared", "jump", "jumped", "optimistic",
	"upside", "win", "winning", "boost", "boosted", "raised",
}

var negativeWords = []string{
	"loss", "losses", "decline", "declined", "drop", "dropped", "fall",
	"fell", "plunge", "plunged", "miss", "missed", "weak", "weaker",
	"downgrade", "downgraded", "underperform", "bearish", "lawsuit",
	"litigation", "investigation", "recall", "layoff", "layoffs", "cut",
	"cuts", "warning", "warned", "risk", "risks", "debt", "default",
	"bankruptcy", "fraud", "slump", "slumped", "crash", "crashed",
	"concern", "concerns", "pessimistic", "downside", "tumble", "tumbled",
	"slowdown", "recession", "shortfall",
}

var uncertaintyWords = []string{
	"may", "might", "could", "maybe", "possibly", "perhaps", "uncertain",
	"uncertainty", "unclear", "volatile", "volatility", "approximately",
	"roughly", "depends", "pending", "speculation", "rumor", "rumors",
	"expect", "expects", "expected", "anticipates", "believes", "appears",
}
