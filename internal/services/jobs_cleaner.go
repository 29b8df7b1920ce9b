package services

import (
	"context"
	"time"

	"github.com/maxaizer/job-ingest/internal/logger"
	"github.com/maxaizer/job-ingest/internal/metrics"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type JobsExpiryRepository interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// JobsCleaner periodically deactivates jobs whose expiry has passed. Rows are kept for history.
type JobsCleaner struct {
	jobs JobsExpiryRepository
	cron *cron.Cron
	now  func() time.Time
}

func NewJobsCleaner(jobs JobsExpiryRepository, schedule string) (*JobsCleaner, error) {

	if schedule == "" {
		return nil, errors.New("cleanup schedule must not be empty")
	}

	jc := &JobsCleaner{
		jobs: jobs,
		cron: cron.New(),
		now:  time.Now,
	}

	_, err := jc.cron.AddFunc(schedule, func() { jc.Clean(context.Background()) })
	if err != nil {
		return nil, errors.Wrapf(err, "invalid cleanup schedule %q", schedule)
	}

	return jc, nil
}

func (jc *JobsCleaner) Start() {
	jc.cron.Start()
	log.Info("jobs cleaner started")
}

func (jc *JobsCleaner) Stop() {
	<-jc.cron.Stop().Done()
}

func (jc *JobsCleaner) Clean(ctx context.Context) int64 {
	rowsAffected, err := jc.jobs.DeactivateExpired(ctx, jc.now())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to deactivate expired jobs: %v", err)
		return 0
	}

	metrics.JobsDeactivatedCounter.Add(float64(rowsAffected))
	log.Infof("expired jobs were deactivated at %v, affected rows: %v", jc.now(), rowsAffected)
	return rowsAffected
}
