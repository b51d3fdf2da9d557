package classifier

import (
	"context"
	"fmt"
	"time"

	"stocksentinel/internal/api"
	"stocksentinel/internal/scoring"
)

// FinBERT classifies text through a local FinBERT inference sidecar.
// The sidecar exposes POST /classify and returns the three class
// probabilities; the continuous score is positive minus negative.
type FinBERT struct {
	client    *api.Client
	threshold float64
}

type finbertRequest struct {
	Text string `json:"text"`
}

type finbertResponse struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// NewFinBERT creates a classifier backed by the inference service at
// endpoint (e.g. http://localhost:8501).
func NewFinBERT(endpoint string, threshold float64) *FinBERT {
	return &FinBERT{
		client: api.NewClient(
			api.WithBaseURL(endpoint),
			api.WithTimeout(60*time.Second),
		),
		threshold: threshold,
	}
}

// Classify sends the text to the inference service. Empty text is neutral
// without a network round trip.
func (f *FinBERT) Classify(ctx context.Context, text string) (scoring.Sentiment, error) {
	if text == "" {
		return scoring.Sentiment{Label: scoring.LabelNeutral}, nil
	}

	resp, err := f.client.POST(ctx, "/classify", finbertRequest{Text: text})
	if err != nil {
		return scoring.Sentiment{}, fmt.Errorf("finbert inference failed: %w", err)
	}

	var r finbertResponse
	if err := resp.ParseJSON(&r); err != nil {
		return scoring.Sentiment{}, err
	}

	score := r.Positive - r.Negative
	return scoring.Sentiment{
		Score: score,
		Label: labelFor(score, f.threshold),
	}, nil
}
