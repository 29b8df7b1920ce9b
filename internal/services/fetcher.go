package services

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/maxaizer/job-ingest/internal/clients/jobspy"
	"github.com/maxaizer/job-ingest/internal/logger"
	"github.com/maxaizer/job-ingest/internal/metrics"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

type FetchOutcome string

const (
	FetchOK        FetchOutcome = "ok"
	FetchEmpty     FetchOutcome = "empty"
	FetchBlocked   FetchOutcome = "blocked"
	FetchExhausted FetchOutcome = "exhausted"
)

// FetchResult is the outcome of one (term, location) search. Err is the last provider error, if any.
type FetchResult struct {
	Outcome  FetchOutcome
	Postings []jobspy.Posting
	Attempts int
	Err      error
}

type FetchRequest struct {
	Sites         []string
	SearchTerm    string
	Location      string
	ResultsWanted int
	Country       string
}

type RetryPolicy struct {
	MaxAttempts    int
	JitterMin      time.Duration
	JitterMax      time.Duration
	BaseDelay      time.Duration
	RateLimitDelay time.Duration
	HoursOld       int
	// DescriptionFormat is passed to the provider as is; empty leaves the provider default.
	DescriptionFormat string
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:       3,
		JitterMin:         2 * time.Second,
		JitterMax:         5 * time.Second,
		BaseDelay:         5 * time.Second,
		RateLimitDelay:    10 * time.Second,
		HoursOld:          jobspy.DefaultHoursOld,
		DescriptionFormat: "html",
	}
}

type errorKind string

const (
	errorRateLimited errorKind = "rate_limited"
	errorBlocked     errorKind = "blocked"
	errorConnection  errorKind = "connection"
	errorOther       errorKind = "other"
)

// classifyError inspects the message text only; the provider has no structured error codes.
func classifyError(err error) errorKind {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		return errorRateLimited
	case strings.Contains(msg, "403") || strings.Contains(msg, "blocked"):
		return errorBlocked
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "connection"):
		return errorConnection
	default:
		return errorOther
	}
}

type jobSearcher interface {
	SearchJobs(ctx context.Context, parameters jobspy.SearchParameters) ([]jobspy.Posting, error)
}

type Fetcher struct {
	client jobSearcher
	policy RetryPolicy
	sleep  func(ctx context.Context, d time.Duration) error
	random func() float64
}

func NewFetcher(client jobSearcher, policy RetryPolicy) *Fetcher {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &Fetcher{client: client, policy: policy, sleep: sleepContext, random: rand.Float64}
}

// Fetch calls the provider with a courtesy delay before every attempt and backs off per error kind.
// It never returns an error: every failure ends up in the FetchResult.
func (f *Fetcher) Fetch(ctx context.Context, request FetchRequest) FetchResult {

	params := f.searchParameters(request)
	fields := log.Fields{"term": request.SearchTerm, "location": request.Location}
	result := FetchResult{Outcome: FetchExhausted}

	for attempt := 0; attempt < f.policy.MaxAttempts; attempt++ {
		if err := f.sleep(ctx, f.jitter()); err != nil {
			result.Err = err
			return result
		}

		result.Attempts = attempt + 1
		postings, err := f.client.SearchJobs(ctx, params)
		if err == nil {
			if len(postings) == 0 {
				log.WithFields(fields).Info("no jobs returned")
				result.Outcome, result.Err = FetchEmpty, nil
				return result
			}
			result.Outcome, result.Postings, result.Err = FetchOK, postings, nil
			return result
		}

		result.Err = err
		kind := classifyError(err)
		metrics.ProviderErrorsCounter.WithLabelValues(string(kind)).Inc()
		log.WithFields(fields).Warnf("attempt %d failed (%s): %v", attempt+1, kind, err)

		if kind == errorBlocked {
			log.WithFields(fields).Warn("blocked by site, skipping this search")
			result.Outcome = FetchBlocked
			return result
		}

		if attempt == f.policy.MaxAttempts-1 {
			break
		}

		if err := f.sleep(ctx, f.backoff(kind, attempt)); err != nil {
			result.Err = err
			return result
		}
	}

	log.WithFields(fields).WithField(logger.ErrorTypeField, logger.ErrorTypeProvider).
		Errorf("search failed after %d attempts: %v", result.Attempts, result.Err)
	return result
}

func (f *Fetcher) searchParameters(request FetchRequest) jobspy.SearchParameters {
	sites := lo.Map(request.Sites, func(site string, _ int) jobspy.Site {
		return jobspy.Site(strings.ToLower(strings.TrimSpace(site)))
	})

	params := jobspy.SearchParameters{
		Sites:             sites,
		SearchTerm:        request.SearchTerm,
		Location:          request.Location,
		ResultsWanted:     lo.Clamp(request.ResultsWanted, 1, jobspy.MaxResultsPerCall),
		HoursOld:          f.policy.HoursOld,
		IsRemote:          strings.Contains(strings.ToLower(request.Location), "remote"),
		DescriptionFormat: f.policy.DescriptionFormat,
	}
	if request.Country != "" && lo.Contains(sites, jobspy.Indeed) {
		params.CountryIndeed = jobspy.IndeedCountry(request.Country)
	}
	return params
}

func (f *Fetcher) jitter() time.Duration {
	span := f.policy.JitterMax - f.policy.JitterMin
	if span <= 0 {
		return f.policy.JitterMin
	}
	return f.policy.JitterMin + time.Duration(f.random()*float64(span))
}

func (f *Fetcher) backoff(kind errorKind, attempt int) time.Duration {
	exponential := f.policy.BaseDelay * time.Duration(1<<attempt)
	switch kind {
	case errorRateLimited:
		return exponential + f.policy.RateLimitDelay
	case errorConnection:
		return exponential
	default:
		return f.policy.BaseDelay
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
