package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stocksentinel/internal/analysis"
	"stocksentinel/internal/classifier"
	"stocksentinel/internal/classifier/classifierobs"
	"stocksentinel/internal/logger"
	"stocksentinel/internal/news"
	"stocksentinel/internal/reportlog"
	"stocksentinel/internal/stocks"
	"stocksentinel/internal/store"
	"stocksentinel/internal/trace"
)

// initializeSystem initializes logger and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// buildService wires the collector, classifier, metadata client and report
// log into an analysis service.
func buildService(ctx context.Context, cfg *store.Config) (*analysis.Service, *stocks.Client, *reportlog.Log, error) {
	collector, err := news.FromConfig(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build news collector: %w", err)
	}

	cls, err := classifier.New(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build classifier: %w", err)
	}
	cls = classifierobs.Wrap(cls)
	logger.Info(ctx, "Classifier initialized", "provider", cfg.Classifier.Provider)

	stocksClient := stocks.NewClient(time.Duration(cfg.News.ScraperTimeoutSeconds) * time.Second)

	reports := reportlog.New(cfg.Reports.Dir, cfg.Reports.RetentionDays)
	if err := reports.CompressOlder(); err != nil {
		logger.Warn(ctx, "Failed to compress old report logs", "error", err.Error())
	}
	// Catch up on yesterday's summary in case the last shutdown was unclean.
	if p, err := reports.SummarizeDay(time.Now().UTC().AddDate(0, 0, -1)); err == nil && p != "" {
		logger.Info(ctx, "Daily summary written", "path", p)
	}

	svc := analysis.NewService(cfg, collector, cls, stocksClient, reports)
	return svc, stocksClient, reports, nil
}
