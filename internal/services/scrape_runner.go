package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/maxaizer/job-ingest/internal/clients/jobspy"
	"github.com/maxaizer/job-ingest/internal/entities"
	"github.com/maxaizer/job-ingest/internal/events"
	"github.com/maxaizer/job-ingest/internal/logger"
	"github.com/maxaizer/job-ingest/internal/metrics"
	"github.com/maxaizer/job-ingest/internal/repositories"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

var europeanCountryCodes = []string{"GB", "DE", "FR", "ES", "IT", "NL", "IE", "CH", "AT", "SE", "DK", "NO", "FI", "BE", "CZ"}

type Coverage struct {
	IndiaJobs  int `json:"india_jobs"`
	USAJobs    int `json:"usa_jobs"`
	EuropeJobs int `json:"europe_jobs"`
	RemoteJobs int `json:"remote_jobs"`
}

// Summary is the result of one run. It is always produced, also when the run fails.
type Summary struct {
	Success            bool     `json:"success"`
	RunID              string   `json:"run_id"`
	ScrapedCount       int      `json:"scraped_count"`
	SavedCount         int      `json:"saved_count"`
	SkippedCount       int      `json:"skipped_count"`
	ExistingCount      int      `json:"existing_count"`
	FailedCount        int      `json:"failed_count"`
	SuccessfulSearches int      `json:"successful_searches"`
	FailedSearches     int      `json:"failed_searches"`
	SearchTerms        []string `json:"search_terms"`
	Locations          []string `json:"locations"`
	JobSites           []string `json:"job_sites"`
	ResultsPerSearch   int      `json:"results_per_search"`
	Coverage           Coverage `json:"coverage"`
	Timestamp          string   `json:"timestamp"`
	Error              string   `json:"error,omitempty"`
}

// FailureSummary reports a run that could not start.
func FailureSummary(err error) Summary {
	return Summary{
		Success:   false,
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Error:     err.Error(),
	}
}

type pairFetcher interface {
	Fetch(ctx context.Context, request FetchRequest) FetchResult
}

type recordBuilder interface {
	Build(ctx context.Context, posting jobspy.Posting, pair PairContext) BuildResult
}

type jobStore interface {
	SaveBatch(ctx context.Context, jobs []entities.Job) (repositories.SaveReport, error)
}

type runStore interface {
	Save(ctx context.Context, run entities.ScrapeRun) error
}

type ScrapeRunner struct {
	fetcher  pairFetcher
	builder  recordBuilder
	jobs     jobStore
	runs     runStore
	bus      EventBus.Bus
	defaults RunDefaults
	now      func() time.Time
}

// NewScrapeRunner accepts nil runs and bus; history and events are then skipped.
func NewScrapeRunner(fetcher pairFetcher, builder recordBuilder, jobs jobStore, runs runStore,
	bus EventBus.Bus, defaults RunDefaults) *ScrapeRunner {

	return &ScrapeRunner{
		fetcher:  fetcher,
		builder:  builder,
		jobs:     jobs,
		runs:     runs,
		bus:      bus,
		defaults: defaults,
		now:      time.Now,
	}
}

func (r *ScrapeRunner) Run(ctx context.Context, cfg ScrapeConfig) Summary {

	start := r.now()
	summary := Summary{RunID: uuid.NewString()}

	resolved, err := cfg.Resolve(r.defaults)
	summary.SearchTerms, summary.Locations, summary.JobSites = resolved.SearchTerms, resolved.Locations, resolved.JobSites
	if err != nil {
		summary.Error = errors.Wrap(err, "invalid scrape config").Error()
		return r.finish(ctx, summary, start)
	}

	summary.ResultsPerSearch = resolved.PerPairQuota()
	log.Infof("starting run %s: %d terms, %d locations, %d results per search",
		summary.RunID, len(resolved.SearchTerms), len(resolved.Locations), summary.ResultsPerSearch)

	seen := make(map[string]struct{})
	var combined []entities.Job

pairs:
	for _, term := range resolved.SearchTerms {
		for _, location := range resolved.Locations {
			if ctx.Err() != nil {
				summary.Error = errors.Wrap(ctx.Err(), "run interrupted").Error()
				break pairs
			}

			if r.runPair(ctx, resolved, term, location, summary.ResultsPerSearch, seen, &combined, &summary) {
				summary.SuccessfulSearches++
			} else {
				summary.FailedSearches++
			}
		}
	}

	combined = cleanJobs(combined, make(map[string]struct{}), nil)
	summary.Coverage = coverageOf(combined)

	if len(combined) > 0 {
		report, err := r.jobs.SaveBatch(ctx, combined)
		summary.SavedCount, summary.ExistingCount, summary.FailedCount = report.Saved, report.Skipped, report.Failed
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to save jobs: %v", err)
			summary.Error = errors.Wrap(err, "failed to save jobs").Error()
		}
		metrics.JobsSavedCounter.Add(float64(report.Saved))
	}

	summary.Success = summary.Error == ""
	return r.finish(ctx, summary, start)
}

// runPair reports whether the provider returned postings for the pair,
// even when every one of them is later dropped as a skip or duplicate.
func (r *ScrapeRunner) runPair(ctx context.Context, cfg ScrapeConfig, term, location string, quota int,
	seen map[string]struct{}, combined *[]entities.Job, summary *Summary) bool {

	fields := log.Fields{"term": term, "location": location}
	log.WithFields(fields).Info("scraping")

	result := r.fetcher.Fetch(ctx, FetchRequest{
		Sites:         cfg.JobSites,
		SearchTerm:    term,
		Location:      location,
		ResultsWanted: quota,
		Country:       cfg.Country,
	})
	metrics.SearchPairsCounter.WithLabelValues(string(result.Outcome)).Inc()
	if result.Outcome != FetchOK {
		log.WithFields(fields).Infof("search ended with outcome %s", result.Outcome)
		return false
	}

	pair := PairContext{SearchTerm: term, Location: location, Country: cfg.Country}
	built := make([]entities.Job, 0, len(result.Postings))
	for _, posting := range result.Postings {
		res := r.builder.Build(ctx, posting, pair)
		if res.Skipped() {
			summary.SkippedCount++
			metrics.SkippedRecordsCounter.WithLabelValues(string(res.Skip)).Inc()
			continue
		}
		built = append(built, *res.Job)
	}

	cleaned := cleanJobs(built, seen, func(job entities.Job) {
		summary.SkippedCount++
		metrics.SkippedRecordsCounter.WithLabelValues(string(SkipDuplicate)).Inc()
	})
	*combined = append(*combined, cleaned...)
	summary.ScrapedCount += len(cleaned)
	metrics.JobsScrapedCounter.Add(float64(len(result.Postings)))

	log.WithFields(fields).Infof("kept %d of %d jobs", len(cleaned), len(result.Postings))
	return true
}

// cleanJobs drops records without title or company and keeps the first record per title and company.
// seen is shared across calls so later pairs are de-duplicated against earlier ones.
func cleanJobs(jobs []entities.Job, seen map[string]struct{}, onDrop func(entities.Job)) []entities.Job {
	return lo.Filter(jobs, func(job entities.Job, _ int) bool {
		key := job.DedupKey()
		_, duplicate := seen[key]
		if job.Title == "" || job.Company == "" || duplicate {
			if onDrop != nil {
				onDrop(job)
			}
			return false
		}
		seen[key] = struct{}{}
		return true
	})
}

func coverageOf(jobs []entities.Job) Coverage {
	return Coverage{
		IndiaJobs:  lo.CountBy(jobs, func(job entities.Job) bool { return job.CountryCode == "IN" }),
		USAJobs:    lo.CountBy(jobs, func(job entities.Job) bool { return job.CountryCode == "US" }),
		EuropeJobs: lo.CountBy(jobs, func(job entities.Job) bool { return lo.Contains(europeanCountryCodes, job.CountryCode) }),
		RemoteJobs: lo.CountBy(jobs, func(job entities.Job) bool { return job.WorkMode == entities.Remote }),
	}
}

func (r *ScrapeRunner) finish(ctx context.Context, summary Summary, start time.Time) Summary {
	finished := r.now()
	duration := finished.Sub(start)
	summary.Timestamp = finished.UTC().Format(time.RFC3339)
	metrics.RunDuration.Observe(duration.Seconds())

	log.Infof("run %s finished in %v: success=%v scraped=%d saved=%d skipped=%d searches ok/failed=%d/%d",
		summary.RunID, duration, summary.Success, summary.ScrapedCount, summary.SavedCount, summary.SkippedCount,
		summary.SuccessfulSearches, summary.FailedSearches)

	if r.runs != nil {
		r.recordRun(context.WithoutCancel(ctx), summary, finished)
	}

	if r.bus != nil {
		r.bus.Publish(events.ScrapeCompletedTopic, events.ScrapeCompleted{
			RunID:              summary.RunID,
			Success:            summary.Success,
			ScrapedCount:       summary.ScrapedCount,
			SavedCount:         summary.SavedCount,
			SkippedCount:       summary.SkippedCount,
			SuccessfulSearches: summary.SuccessfulSearches,
			FailedSearches:     summary.FailedSearches,
			Coverage: map[string]int{
				"india":  summary.Coverage.IndiaJobs,
				"usa":    summary.Coverage.USAJobs,
				"europe": summary.Coverage.EuropeJobs,
				"remote": summary.Coverage.RemoteJobs,
			},
			Duration: duration,
			Error:    summary.Error,
		})
	}

	return summary
}

func (r *ScrapeRunner) recordRun(ctx context.Context, summary Summary, finished time.Time) {
	payload, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to encode run summary: %v", err)
		return
	}

	err = r.runs.Save(ctx, entities.ScrapeRun{
		RunID:              summary.RunID,
		Success:            summary.Success,
		ScrapedCount:       summary.ScrapedCount,
		SavedCount:         summary.SavedCount,
		SkippedCount:       summary.SkippedCount,
		SuccessfulSearches: summary.SuccessfulSearches,
		FailedSearches:     summary.FailedSearches,
		Error:              summary.Error,
		Summary:            payload,
		FinishedAt:         finished.UTC(),
	})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to record run %s: %v", summary.RunID, err)
	}
}
