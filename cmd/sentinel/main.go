// Command sentinel runs a one-shot analysis for a ticker and prints the
// report as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stocksentinel/internal/analysis"
	"stocksentinel/internal/classifier"
	"stocksentinel/internal/logger"
	"stocksentinel/internal/news"
	"stocksentinel/internal/reportlog"
	"stocksentinel/internal/stocks"
	"stocksentinel/internal/store"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	ticker := flag.String("ticker", "", "stock ticker to analyze (required)")
	days := flag.Int("days", 0, "lookback window in days (default from config)")
	maxArticles := flag.Int("max-articles", 0, "maximum articles to collect (default from config)")
	output := flag.String("output", "", "write the JSON report to this file instead of stdout")
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if *ticker == "" {
		fmt.Fprintln(os.Stderr, "usage: sentinel -ticker AAPL [-days 7] [-max-articles 50] [-output report.json]")
		os.Exit(2)
	}

	_ = godotenv.Load()
	must(logger.Init())

	cfg, err := store.LoadConfig(*configPath)
	must(err)

	if *days == 0 {
		*days = cfg.News.Days
	}
	if *maxArticles == 0 {
		*maxArticles = cfg.News.MaxArticles
	}

	ctx := context.Background()

	collector, err := news.FromConfig(cfg)
	must(err)
	cls, err := classifier.New(cfg)
	must(err)
	stocksClient := stocks.NewClient(time.Duration(cfg.News.ScraperTimeoutSeconds) * time.Second)
	reports := reportlog.New(cfg.Reports.Dir, cfg.Reports.RetentionDays)

	svc := analysis.NewService(cfg, collector, cls, stocksClient, reports)

	report, err := svc.Analyze(ctx, *ticker, *days, *maxArticles)
	must(err)

	b, err := json.MarshalIndent(report, "", "  ")
	must(err)

	if *output != "" {
		must(os.WriteFile(*output, b, 0o644))
		fmt.Println("Report written to", *output)
		return
	}
	fmt.Println(string(b))
}
