package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stocksentinel/internal/logger"
	"stocksentinel/internal/server"
	"stocksentinel/internal/trace"
)

func main() {
	if err := initializeSystem(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() {
		if err := trace.Shutdown(context.Background()); err != nil {
			logger.Warn(context.Background(), "Tracer shutdown failed", "error", err.Error())
		}
	}()

	cfg, err := loadConfig(ctx)
	if err != nil {
		log.Fatal(err)
	}

	svc, stocksClient, reports, err := buildService(ctx, cfg)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to build analysis service", err)
		os.Exit(1)
	}

	srv := server.New(cfg, svc, stocksClient)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Start()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		if err != nil {
			logger.ErrorWithErr(ctx, "Server failed", err)
			os.Exit(1)
		}
	case sig := <-sigc:
		logger.Info(ctx, "Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownSeconds)*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.ErrorWithErr(ctx, "Graceful shutdown failed", err)
		}
		if p, err := reports.SummarizeDay(time.Now().UTC()); err == nil && p != "" {
			logger.Info(ctx, "Daily summary written", "path", p)
		}
	}
}
