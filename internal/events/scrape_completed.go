package events

import "time"

var ScrapeCompletedTopic = "ScrapeCompletedEvent"

type ScrapeCompleted struct {
	RunID              string
	Success            bool
	ScrapedCount       int
	SavedCount         int
	SkippedCount       int
	SuccessfulSearches int
	FailedSearches     int
	Coverage           map[string]int
	Duration           time.Duration
	Error              string
}
