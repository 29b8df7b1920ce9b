package entities

import (
	"time"

	"gorm.io/datatypes"
)

// ScrapeRun is the stored outcome of one orchestrator run.
type ScrapeRun struct {
	ID                 uint   `gorm:"primaryKey"`
	RunID              string `gorm:"uniqueIndex;size:36"`
	Success            bool
	ScrapedCount       int
	SavedCount         int
	SkippedCount       int
	SuccessfulSearches int
	FailedSearches     int
	Error              string
	Summary            datatypes.JSON
	FinishedAt         time.Time `gorm:"index"`
	CreatedAt          time.Time
}

func (ScrapeRun) TableName() string {
	return "scrape_runs"
}
