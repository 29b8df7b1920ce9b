package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/maxaizer/job-ingest/internal/entities"
	"github.com/maxaizer/job-ingest/internal/events"
)

func formatSummary(event events.ScrapeCompleted) string {
	var b strings.Builder

	status := "finished"
	if !event.Success {
		status = "failed"
	}
	fmt.Fprintf(&b, "Scrape run %s %s in %v\n", event.RunID, status, event.Duration.Round(time.Second))
	fmt.Fprintf(&b, "Scraped: %d, saved: %d, skipped: %d\n", event.ScrapedCount, event.SavedCount, event.SkippedCount)
	fmt.Fprintf(&b, "Searches ok/failed: %d/%d\n", event.SuccessfulSearches, event.FailedSearches)
	fmt.Fprintf(&b, "Coverage: India %d, USA %d, Europe %d, Remote %d",
		event.Coverage["india"], event.Coverage["usa"], event.Coverage["europe"], event.Coverage["remote"])
	if event.Error != "" {
		fmt.Fprintf(&b, "\nError: %s", event.Error)
	}
	return b.String()
}

func formatLatestRun(run *entities.ScrapeRun) string {
	if run == nil {
		return "No runs recorded yet."
	}

	status := "succeeded"
	if !run.Success {
		status = "failed"
	}
	text := fmt.Sprintf("Latest run %s %s at %s\nScraped: %d, saved: %d, skipped: %d\nSearches ok/failed: %d/%d",
		run.RunID, status, run.FinishedAt.Format(time.RFC3339),
		run.ScrapedCount, run.SavedCount, run.SkippedCount, run.SuccessfulSearches, run.FailedSearches)
	if run.Error != "" {
		text += "\nError: " + run.Error
	}
	return text
}
