package reportlog

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocksentinel/internal/analysis"
	"stocksentinel/internal/scoring"
)

func sampleReport(ticker string, score float64, rec scoring.Recommendation) *analysis.Report {
	return &analysis.Report{
		Ticker:       ticker,
		AnalysisDate: time.Now().UTC(),
		Result: scoring.Result{
			Ticker:         ticker,
			OverallScore:   score,
			Recommendation: rec,
			Confidence:     scoring.ConfidenceMedium,
			Stats: scoring.Stats{
				ArticleCount: 12,
				SourceCount:  3,
				MeanScore:    0.4,
			},
		},
	}
}

func TestRecordAppendsJSONL(t *testing.T) {
	dir := t.TempDir()
	log := New(dir, 0)

	require.NoError(t, log.Record(context.Background(), sampleReport("AAPL", 72.5, scoring.StrongBuy)))
	require.NoError(t, log.Record(context.Background(), sampleReport("TSLA", 38.0, scoring.Sell)))

	f, err := os.Open(log.dailyFilepath(time.Now().UTC()))
	require.NoError(t, err)
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, sc.Err())

	require.Len(t, entries, 2)
	assert.Equal(t, "AAPL", entries[0].Ticker)
	assert.Equal(t, 72.5, entries[0].OverallScore)
	assert.Equal(t, "STRONG_BUY", entries[0].Recommendation)
	assert.Equal(t, 12, entries[0].Articles)
	assert.Equal(t, "TSLA", entries[1].Ticker)
}

func TestSummarizeDay(t *testing.T) {
	dir := t.TempDir()
	log := New(dir, 0)
	ctx := context.Background()

	require.NoError(t, log.Record(ctx, sampleReport("AAPL", 70.0, scoring.StrongBuy)))
	require.NoError(t, log.Record(ctx, sampleReport("AAPL", 60.0, scoring.Buy)))
	require.NoError(t, log.Record(ctx, sampleReport("TSLA", 35.0, scoring.Sell)))

	path, err := log.SummarizeDay(time.Now().UTC())
	require.NoError(t, err)
	require.NotEmpty(t, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "ticker", rows[0][0])
	assert.Equal(t, "AAPL", rows[1][0])
	assert.Equal(t, "2", rows[1][1])
	assert.Equal(t, "65.00", rows[1][2])
	assert.Equal(t, "BUY", rows[1][4])
	assert.Equal(t, "TSLA", rows[2][0])
	assert.Equal(t, "SELL", rows[2][4])
}

func TestSummarizeDayPastDate(t *testing.T) {
	dir := t.TempDir()
	log := New(dir, 0)
	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	line := `{"time":"2026-08-30 10:00:00","ticker":"AAPL","overall_score":68.0,"recommendation":"BUY","confidence":"MEDIUM","articles":15,"sources":3,"mean_sentiment":0.3}`
	require.NoError(t, os.WriteFile(log.dailyFilepath(yesterday), []byte(line+"\n"), 0o644))

	path, err := log.SummarizeDay(yesterday)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "AAPL", rows[1][0])
	assert.Equal(t, "68.00", rows[1][2])
	assert.Equal(t, "BUY", rows[1][4])
}

func TestSummarizeDayNoFile(t *testing.T) {
	log := New(t.TempDir(), 0)

	path, err := log.SummarizeDay(time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestCompressOlder(t *testing.T) {
	dir := t.TempDir()
	log := New(dir, 7)

	old := log.dailyFilepath(time.Now().UTC().AddDate(0, 0, -10))
	require.NoError(t, os.WriteFile(old, []byte(`{"ticker":"AAPL"}`+"\n"), 0o644))
	stale := time.Now().AddDate(0, 0, -10)
	require.NoError(t, os.Chtimes(old, stale, stale))

	fresh := log.dailyFilepath(time.Now().UTC())
	require.NoError(t, os.WriteFile(fresh, []byte(`{"ticker":"TSLA"}`+"\n"), 0o644))

	require.NoError(t, log.CompressOlder())

	_, err := os.Stat(old + ".gz")
	assert.NoError(t, err, "old file should be gzipped")
	_, err = os.Stat(old)
	assert.True(t, os.IsNotExist(err), "old plain file should be removed")
	_, err = os.Stat(fresh)
	assert.NoError(t, err, "fresh file should be untouched")
}

func TestCompressOlderDisabled(t *testing.T) {
	dir := t.TempDir()
	log := New(dir, 0)

	old := log.dailyFilepath(time.Now().UTC().AddDate(0, 0, -30))
	require.NoError(t, os.WriteFile(old, []byte("{}\n"), 0o644))

	require.NoError(t, log.CompressOlder())

	_, err := os.Stat(old)
	assert.NoError(t, err)
}
