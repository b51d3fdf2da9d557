// Package reportlog persists one JSONL line per completed analysis into
// daily files, with gzip rotation for old files and a CSV day summary.
package reportlog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"stocksentinel/internal/analysis"
)

// Entry is one logged analysis outcome. Kept flat so the daily files grep
// and summarize easily.
type Entry struct {
	Time           string  `json:"time"`
	Ticker         string  `json:"ticker"`
	OverallScore   float64 `json:"overall_score"`
	Recommendation string  `json:"recommendation"`
	Confidence     string  `json:"confidence"`
	Articles       int     `json:"articles"`
	Sources        int     `json:"sources"`
	MeanSentiment  float64 `json:"mean_sentiment"`
}

// Log appends analysis reports to daily JSONL files under a directory.
type Log struct {
	mu            sync.Mutex
	dir           string
	retentionDays int
}

// Compile-time interface check
var _ analysis.Recorder = (*Log)(nil)

// New creates a report log. The REPORT_LOG_DIR environment variable
// overrides dir when set.
func New(dir string, retentionDays int) *Log {
	if v := os.Getenv("REPORT_LOG_DIR"); v != "" {
		dir = v
	}
	if dir == "" {
		dir = "reports"
	}
	return &Log{dir: dir, retentionDays: retentionDays}
}

func (l *Log) dailyFilepath(t time.Time) string {
	return filepath.Join(l.dir, t.UTC().Format("2006-01-02")+".jsonl")
}

func (l *Log) summaryFilepath(t time.Time) string {
	return filepath.Join(l.dir, "summary", t.UTC().Format("2006-01-02")+".csv")
}

// Record appends the report to today's file.
func (l *Log) Record(_ context.Context, report *analysis.Report) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	e := Entry{
		Time:           now.Format("2006-01-02 15:04:05"),
		Ticker:         report.Ticker,
		OverallScore:   report.Result.OverallScore,
		Recommendation: string(report.Result.Recommendation),
		Confidence:     string(report.Result.Confidence),
		Articles:       report.Result.Stats.ArticleCount,
		Sources:        report.Result.Stats.SourceCount,
		MeanSentiment:  report.Result.Stats.MeanScore,
	}

	p := l.dailyFilepath(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, _ := json.Marshal(e)
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// CompressOlder gzips daily files older than the retention window. A zero
// or negative retention disables compression.
func (l *Log) CompressOlder() error {
	if l.retentionDays <= 0 {
		return nil
	}
	cutoff := time.Now().AddDate(0, 0, -l.retentionDays)
	return filepath.WalkDir(l.dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(p) != ".jsonl" {
			return nil
		}
		info, er := os.Stat(p)
		if er != nil {
			return nil
		}
		if !info.ModTime().Before(cutoff) {
			return nil
		}

		gz := p + ".gz"
		// if already gz exists, remove original .jsonl
		if _, e2 := os.Stat(gz); e2 == nil {
			_ = os.Remove(p)
			return nil
		}

		in, e3 := os.Open(p)
		if e3 != nil {
			return nil
		}
		defer in.Close()

		out, e4 := os.OpenFile(gz, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if e4 != nil {
			return nil
		}
		gw := gzip.NewWriter(out)
		if _, e5 := io.Copy(gw, in); e5 == nil {
			_ = gw.Close()
			_ = out.Close()
			_ = os.Remove(p)
		} else {
			_ = gw.Close()
			_ = out.Close()
		}
		return nil
	})
}
