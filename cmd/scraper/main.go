package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/maxaizer/job-ingest/internal/app"
	"github.com/maxaizer/job-ingest/internal/config"
	"github.com/maxaizer/job-ingest/internal/logger"
	"github.com/maxaizer/job-ingest/internal/services"
	log "github.com/sirupsen/logrus"
)

// Usage: scraper '<config json>'
// The run summary is printed to stdout; logs go to stderr.
func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Errorf("configuration error: %v", err)
		printSummary(services.FailureSummary(err))
		return 1
	}

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	var raw string
	if len(args) > 0 {
		raw = args[0]
	}
	scrapeConfig := services.ParseScrapeConfig(raw)

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Error(err)
		printSummary(services.FailureSummary(err))
		return 1
	}
	defer application.Close()

	summary := application.Runner.Run(ctx, scrapeConfig)
	printSummary(summary)

	if !summary.Success {
		return 1
	}
	return 0
}

func printSummary(summary services.Summary) {
	output, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Errorf("failed to encode summary: %v", err)
		return
	}
	fmt.Println(string(output))
}
