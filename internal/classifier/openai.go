package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"stocksentinel/internal/scoring"
)

const openAIChatURL = "https://api.openai.com/v1/chat/completions"

// OpenAI classifies financial text with a chat-completions model
// constrained to a JSON response.
type OpenAI struct {
	model      string
	maxTokens  int
	httpClient *http.Client
}

// NewOpenAI creates an OpenAI-backed classifier. The API key is read from
// the environment at call time so key rotation does not require a restart.
func NewOpenAI(model string, maxTokens int) *OpenAI {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAI{
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Classify asks the model for a sentiment score and label for the text.
func (o *OpenAI) Classify(ctx context.Context, text string) (scoring.Sentiment, error) {
	if text == "" {
		return scoring.Sentiment{Label: scoring.LabelNeutral}, nil
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return scoring.Sentiment{}, errors.New("OPENAI_API_KEY missing")
	}

	if len(text) > 2000 {
		text = text[:2000] + "..."
	}

	systemPrompt := "You are a financial analyst expert at judging news sentiment for stocks. Respond ONLY with valid JSON."
	prompt := fmt.Sprintf(`Rate the sentiment of this financial news text for investors.

Text: %s

Respond ONLY with valid JSON matching this schema:
{
  "score": -1.0 to 1.0 (float, -1 = maximally bearish, 1 = maximally bullish),
  "label": "positive|negative|neutral"
}`, text)

	body := map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.1,
		"max_tokens":  o.maxTokens,
	}
	bb, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", openAIChatURL, bytes.NewReader(bb))
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return scoring.Sentiment{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return scoring.Sentiment{}, fmt.Errorf("openai http %d", resp.StatusCode)
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return scoring.Sentiment{}, err
	}
	if len(r.Choices) == 0 {
		return scoring.Sentiment{}, errors.New("no choices")
	}

	content := strings.TrimSpace(r.Choices[0].Message.Content)

	var parsed struct {
		Score float64 `json:"score"`
		Label string  `json:"label"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return scoring.Sentiment{}, fmt.Errorf("invalid JSON response: %w", err)
	}

	sentiment := scoring.Sentiment{Score: parsed.Score}
	switch scoring.SentimentLabel(strings.ToLower(parsed.Label)) {
	case scoring.LabelPositive, scoring.LabelNegative, scoring.LabelNeutral:
		sentiment.Label = scoring.SentimentLabel(strings.ToLower(parsed.Label))
	default:
		sentiment.Label = labelFor(parsed.Score, 0.3)
	}

	return sentiment, nil
}
