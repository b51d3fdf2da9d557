package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocksentinel/internal/scoring"
)

func TestLexiconPositiveHeadline(t *testing.T) {
	lex := NewLexicon(0.3)

	got, err := lex.Classify(context.Background(),
		"Company posts record profit, shares surge on strong growth and raised guidance")
	require.NoError(t, err)

	assert.Equal(t, scoring.LabelPositive, got.Label)
	assert.Greater(t, got.Score, 0.3)
	assert.LessOrEqual(t, got.Score, 1.0)
}

func TestLexiconNegativeHeadline(t *testing.T) {
	lex := NewLexicon(0.3)

	got, err := lex.Classify(context.Background(),
		"Shares plunge after earnings miss, lawsuit and layoffs raise bankruptcy concerns")
	require.NoError(t, err)

	assert.Equal(t, scoring.LabelNegative, got.Label)
	assert.Less(t, got.Score, -0.3)
	assert.GreaterOrEqual(t, got.Score, -1.0)
}

func TestLexiconNeutralText(t *testing.T) {
	lex := NewLexicon(0.3)

	got, err := lex.Classify(context.Background(),
		"The company held its annual shareholder meeting on Tuesday")
	require.NoError(t, err)

	assert.Equal(t, scoring.LabelNeutral, got.Label)
	assert.InDelta(t, 0.0, got.Score, 0.3)
}

func TestLexiconEmptyText(t *testing.T) {
	lex := NewLexicon(0.3)

	got, err := lex.Classify(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, scoring.LabelNeutral, got.Label)
	assert.Zero(t, got.Score)
}

func TestLexiconUncertaintyDampens(t *testing.T) {
	lex := NewLexicon(0.3)

	firm, err := lex.Classify(context.Background(),
		"Record profit growth strong gains")
	require.NoError(t, err)

	hedged, err := lex.Classify(context.Background(),
		"Record profit growth strong gains maybe possibly uncertain pending")
	require.NoError(t, err)

	assert.Less(t, hedged.Score, firm.Score)
}

func TestLexiconDeterministic(t *testing.T) {
	lex := NewLexicon(0.3)
	text := "Strong rally on record profit, though analysts warn of volatility risk"

	first, err := lex.Classify(context.Background(), text)
	require.NoError(t, err)
	second, err := lex.Classify(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
