package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ingest_run_duration_seconds",
			Help:    "Duration of each scrape run in seconds.",
			Buckets: []float64{30, 120, 300, 900, 1800, 3600},
		},
	)
	ProviderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ingest_provider_request_duration_seconds",
			Help:    "Duration of each search request to the job provider.",
			Buckets: []float64{1, 5, 15, 30, 60, 120},
		},
	)
	SearchPairsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_search_pairs_total",
			Help: "Total number of searched term/location pairs by fetch outcome.",
		},
		[]string{"outcome"},
	)
	ProviderErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_provider_errors_total",
			Help: "Total number of failed provider calls by error kind.",
		},
		[]string{"kind"},
	)
	JobsScrapedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_jobs_scraped_total",
			Help: "Total number of raw postings returned by the provider.",
		},
	)
	SkippedRecordsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_records_skipped_total",
			Help: "Total number of postings that did not produce a record.",
		},
		[]string{"reason"},
	)
	JobsSavedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_jobs_saved_total",
			Help: "Total number of newly stored jobs.",
		},
	)
	JobsDeactivatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_jobs_deactivated_total",
			Help: "Total number of jobs deactivated after expiry.",
		},
	)
)

func StartMetricsServer(addr string) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RunDuration)
	prometheus.MustRegister(ProviderRequestDuration)
	prometheus.MustRegister(SearchPairsCounter)
	prometheus.MustRegister(ProviderErrorsCounter)
	prometheus.MustRegister(JobsScrapedCounter)
	prometheus.MustRegister(SkippedRecordsCounter)
	prometheus.MustRegister(JobsSavedCounter)
	prometheus.MustRegister(JobsDeactivatedCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(addr, nil))
	}()
}
