package reportlog

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

type aggRow struct {
	Ticker    string
	Analyses  int
	ScoreSum  float64
	Articles  int
	LastRec   string
	LastConf  string
	LastScore float64
}

// SummarizeDay aggregates one day's JSONL into a per-ticker CSV and returns
// the path written. Missing or empty input yields no file and no error.
func (l *Log) SummarizeDay(t time.Time) (string, error) {
	inPath := l.dailyFilepath(t)
	if _, err := os.Stat(inPath); err != nil {
		return "", nil
	}
	f, err := os.Open(inPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	aggs := map[string]*aggRow{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue
		}
		row := aggs[e.Ticker]
		if row == nil {
			row = &aggRow{Ticker: e.Ticker}
			aggs[e.Ticker] = row
		}
		row.Analyses++
		row.ScoreSum += e.OverallScore
		row.Articles += e.Articles
		row.LastRec = e.Recommendation
		row.LastConf = e.Confidence
		row.LastScore = e.OverallScore
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	if len(aggs) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(aggs))
	for k := range aggs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	outPath := l.summaryFilepath(t)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()
	headers := []string{"ticker", "analyses", "avg_score", "last_score", "last_recommendation", "last_confidence", "total_articles"}
	if err := w.Write(headers); err != nil {
		return "", err
	}
	for _, k := range keys {
		r := aggs[k]
		rec := []string{
			r.Ticker,
			strconv.Itoa(r.Analyses),
			fmt.Sprintf("%.2f", r.ScoreSum/float64(r.Analyses)),
			fmt.Sprintf("%.2f", r.LastScore),
			r.LastRec,
			r.LastConf,
			strconv.Itoa(r.Articles),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	return outPath, nil
}
