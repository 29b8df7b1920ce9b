package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/maxaizer/job-ingest/internal/config"
	"github.com/maxaizer/job-ingest/internal/entities"
	"github.com/maxaizer/job-ingest/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchResponse = `{
  "count": 3,
  "jobs": [
    {"site": "indeed", "job_url": "https://www.indeed.com/viewjob?jk=1", "title": "Senior Go Developer",
     "company": "Acme", "location": "Austin, TX", "min_amount": "120000", "max_amount": 150000, "currency": "USD",
     "description": "<ul><li>Go</li><li>Kubernetes</li></ul>"},
    {"site": "indeed", "job_url": "https://www.indeed.com/viewjob?jk=2", "title": "Junior Data Analyst",
     "company": "Globex", "location": null, "min_amount": "NaN", "max_amount": null},
    {"site": "indeed", "job_url": "https://www.indeed.com/viewjob?jk=3", "title": null, "company": "Initech"}
  ]
}`

func testConfig(t *testing.T, providerURL string) *config.Config {
	return &config.Config{
		Logger:   config.LoggerConfig{LogLevel: config.LevelError},
		DB:       config.DBConfig{ConnectionString: filepath.Join(t.TempDir(), "ingest.db")},
		Provider: config.ProviderConfig{URL: providerURL},
		Scraper: config.ScraperConfig{
			MaxAttempts:    3,
			HoursOld:       168,
			RetentionDays:  30,
			DefaultCountry: "USA",
			DefaultResults: 20,
		},
	}
}

func Test_App_RunIsIdempotentEndToEnd(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/api/v1/search_jobs" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchResponse))
	}))
	defer server.Close()

	ctx := context.Background()
	application, err := New(ctx, testConfig(t, server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)
	defer application.Close()

	cfg := services.ScrapeConfig{
		SearchTerms:   []string{"go developer"},
		Locations:     []string{"Austin, TX"},
		JobSites:      []string{"indeed"},
		ResultsWanted: 10,
	}

	first := application.Runner.Run(ctx, cfg)
	require.True(t, first.Success, first.Error)
	assert.Equal(t, 2, first.ScrapedCount)
	assert.Equal(t, 2, first.SavedCount)
	assert.Equal(t, 1, first.SkippedCount)
	assert.Equal(t, 1, first.SuccessfulSearches)
	assert.Equal(t, 2, first.Coverage.USAJobs)

	second := application.Runner.Run(ctx, cfg)
	require.True(t, second.Success, second.Error)
	assert.Equal(t, 0, second.SavedCount)
	assert.Equal(t, 2, second.ExistingCount)
	assert.Equal(t, int32(2), calls.Load())

	var jobs []entities.Job
	require.NoError(t, application.DB.DB.Order("id").Find(&jobs).Error)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Senior Go Developer", jobs[0].Title)
	assert.Equal(t, "senior", string(jobs[0].ExperienceLevel))
	assert.Equal(t, []string{"Go", "Kubernetes"}, []string(jobs[0].Skills))
	require.NotNil(t, jobs[0].SalaryRangeDisplay)
	assert.Equal(t, "$120,000 - $150,000", *jobs[0].SalaryRangeDisplay)
	assert.Equal(t, "Austin, TX", jobs[1].LocationRaw)
	assert.Nil(t, jobs[1].SalaryMin)
	assert.Equal(t, "entry", string(jobs[1].ExperienceLevel))

	latest, err := application.Runs.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.RunID, latest.RunID)
}

func Test_App_ProviderFailureIsReportedPerPair(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("blocked"))
	}))
	defer server.Close()

	ctx := context.Background()
	application, err := New(ctx, testConfig(t, server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)
	defer application.Close()

	summary := application.Runner.Run(ctx, services.ScrapeConfig{SearchTerms: []string{"go"}, Locations: []string{"Remote"}})
	assert.True(t, summary.Success)
	assert.Equal(t, 0, summary.SuccessfulSearches)
	assert.Equal(t, 1, summary.FailedSearches)
	assert.Equal(t, 0, summary.SavedCount)
}
