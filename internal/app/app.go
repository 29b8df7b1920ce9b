// Package app wires configuration, storage, the provider client and the services into a runnable pipeline.
package app

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-ingest/internal/clients/gemini"
	"github.com/maxaizer/job-ingest/internal/clients/jobspy"
	"github.com/maxaizer/job-ingest/internal/config"
	"github.com/maxaizer/job-ingest/internal/repositories"
	"github.com/maxaizer/job-ingest/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type App struct {
	DB     *repositories.DbContext
	Jobs   *repositories.Jobs
	Runs   *repositories.Runs
	Bus    EventBus.Bus
	Runner *services.ScrapeRunner

	aiClient *gemini.Client
}

type Option func(*options)

type options struct {
	httpClient jobspy.HTTPClient
}

// WithHTTPClient replaces the transport used to reach the job provider.
func WithHTTPClient(client jobspy.HTTPClient) Option {
	return func(o *options) { o.httpClient = client }
}

func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		return nil, errors.Wrap(err, "can't create db context")
	}

	if err = dbContext.Migrate(); err != nil {
		_ = dbContext.Close()
		return nil, errors.Wrap(err, "can't migrate db context")
	}

	application := &App{
		DB:   dbContext,
		Jobs: repositories.NewJobsRepository(dbContext.DB, time.Duration(cfg.Scraper.RetentionDays)*24*time.Hour),
		Runs: repositories.NewRunsRepository(dbContext.DB),
		Bus:  EventBus.New(),
	}

	client := jobspy.NewClient(cfg.Provider.URL)
	client.SetAPIKey(cfg.Provider.APIKey)
	if o.httpClient != nil {
		client.SetHTTPClient(o.httpClient)
	} else {
		client.SetTimeout(cfg.Provider.Timeout)
	}
	if cfg.Provider.MaxRequestsPerSecond > 0 {
		client.SetRateLimit(cfg.Provider.MaxRequestsPerSecond)
	}

	var suggester services.CategorySuggester
	if cfg.AI.Enabled() {
		aiClient, err := gemini.NewClient(ctx, cfg.AI.Key, gemini.Model(cfg.AI.Model))
		if err != nil {
			_ = dbContext.Close()
			return nil, errors.Wrap(err, "can't create AI client")
		}
		aiClient.SetMinuteRateLimit(cfg.AI.MaxRequestsPerMinute)
		aiClient.SetDayRateLimit(cfg.AI.MaxRequestsPerDay)
		application.aiClient = aiClient
		suggester = services.NewAICategorizer(aiClient)
		log.Infof("AI category refinement enabled with model %s", cfg.AI.Model)
	}

	fetcher := services.NewFetcher(client, RetryPolicy(cfg.Scraper))
	application.Runner = services.NewScrapeRunner(fetcher, services.NewRecordBuilder(suggester),
		application.Jobs, application.Runs, application.Bus,
		services.RunDefaults{ResultsWanted: cfg.Scraper.DefaultResults, Country: cfg.Scraper.DefaultCountry})

	return application, nil
}

func RetryPolicy(cfg config.ScraperConfig) services.RetryPolicy {
	return services.RetryPolicy{
		MaxAttempts:       cfg.MaxAttempts,
		JitterMin:         cfg.JitterMin,
		JitterMax:         cfg.JitterMax,
		BaseDelay:         cfg.BaseDelay,
		RateLimitDelay:    cfg.RateLimitDelay,
		HoursOld:          cfg.HoursOld,
		DescriptionFormat: cfg.DescriptionFormat,
	}
}

func (a *App) Close() {
	if a.aiClient != nil {
		if err := a.aiClient.Close(); err != nil {
			log.Warnf("failed to close AI client: %v", err)
		}
	}
	if err := a.DB.Close(); err != nil {
		log.Warnf("failed to close db: %v", err)
	}
}
