package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/maxaizer/job-ingest/internal/app"
	"github.com/maxaizer/job-ingest/internal/bot"
	"github.com/maxaizer/job-ingest/internal/config"
	"github.com/maxaizer/job-ingest/internal/logger"
	"github.com/maxaizer/job-ingest/internal/metrics"
	"github.com/maxaizer/job-ingest/internal/services"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

func runScraper(ctx context.Context, cfg *config.Config, application *app.App) *cron.Cron {

	scrapeConfig := services.ParseScrapeConfig(cfg.Scheduler.ScrapeConfig)

	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := scheduler.AddFunc(cfg.Scheduler.ScrapeCron, func() {
		application.Runner.Run(ctx, scrapeConfig)
	})
	if err != nil {
		log.Fatalf("invalid scrape schedule %q: %v", cfg.Scheduler.ScrapeCron, err)
	}

	scheduler.Start()
	log.Infof("scraper scheduled with %q", cfg.Scheduler.ScrapeCron)
	return scheduler
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Scheduler.MetricsAddr)

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer application.Close()

	var tgbot *bot.Bot
	if cfg.Notifier.Enabled() {
		tgbot, err = bot.NewBot(cfg.Notifier.Token, cfg.Notifier.ChatID, application.Bus, application.Runs)
		if err != nil {
			log.Fatalf("can't create bot: %v", err)
		}
		go tgbot.Run()
	}

	cleaner, err := services.NewJobsCleaner(application.Jobs, cfg.Scheduler.CleanupCron)
	if err != nil {
		log.Fatalf("can't create cleaner: %v", err)
	}
	cleaner.Start()

	scheduler := runScraper(ctx, cfg, application)

	<-ctx.Done()

	log.Info("Shutting down services...")
	<-scheduler.Stop().Done()
	cleaner.Stop()
	if tgbot != nil {
		tgbot.Stop()
	}
	application.Bus.WaitAsync()
	log.Info("Services stopped.")
}
