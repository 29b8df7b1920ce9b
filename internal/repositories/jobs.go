package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/maxaizer/job-ingest/internal/entities"
	"github.com/maxaizer/job-ingest/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	DefaultRetention = 30 * 24 * time.Hour
	knownIDsTTL      = 12 * time.Hour
)

// SaveReport counts the outcome of one batch. Skipped rows already existed.
type SaveReport struct {
	Saved   int `json:"saved"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Jobs is an insert-if-absent store keyed by external id.
// The existence check and the insert are not atomic; a single writer per table is assumed.
// Ids committed by this instance are remembered for knownIDsTTL and skipped without a query,
// so a row deleted out of band is not inserted again by the same process until its id expires.
type Jobs struct {
	db        *gorm.DB
	retention time.Duration
	known     *knownIDs
	now       func() time.Time
}

func NewJobsRepository(db *gorm.DB, retention time.Duration) *Jobs {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Jobs{db: db, retention: retention, known: newKnownIDs(knownIDsTTL), now: time.Now}
}

func (repo *Jobs) Exists(ctx context.Context, job entities.Job) (bool, error) {
	if repo.known.Has(job.ExternalID) {
		return true, nil
	}
	return exists(repo.db.WithContext(ctx), job)
}

func exists(db *gorm.DB, job entities.Job) (bool, error) {
	query := db.Model(&entities.Job{})
	if job.ExternalID != "" {
		query = query.Where("external_id = ?", job.ExternalID)
	} else {
		query = query.Where("title = ? AND company = ? AND location_raw = ?", job.Title, job.Company, job.LocationRaw)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveBatch writes the batch in one transaction with a savepoint per record.
// A record failure rolls back only that record. A failure to begin or commit reports nothing saved.
func (repo *Jobs) SaveBatch(ctx context.Context, jobs []entities.Job) (SaveReport, error) {

	report := SaveReport{}
	if len(jobs) == 0 {
		return report, nil
	}

	tx := repo.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return SaveReport{}, errors.Wrap(tx.Error, "failed to begin transaction")
	}

	now := repo.now().UTC()
	var inserted []string

	for i := range jobs {
		job := jobs[i]

		if repo.known.Has(job.ExternalID) {
			report.Skipped++
			continue
		}

		savepoint := fmt.Sprintf("job_%d", i)
		if err := tx.SavePoint(savepoint).Error; err != nil {
			tx.Rollback()
			return SaveReport{}, errors.Wrap(err, "failed to create savepoint")
		}

		saved, err := repo.insertIfAbsent(tx, &job, now)
		if err != nil {
			log.WithFields(log.Fields{
				"title":               job.Title,
				"company":             job.Company,
				logger.ErrorTypeField: logger.ErrorTypeDb,
			}).Errorf("failed to save job: %v", err)

			if rbErr := tx.RollbackTo(savepoint).Error; rbErr != nil {
				tx.Rollback()
				return SaveReport{}, errors.Wrap(rbErr, "failed to roll back to savepoint")
			}
			report.Failed++
			continue
		}

		if saved {
			report.Saved++
			inserted = append(inserted, job.ExternalID)
		} else {
			report.Skipped++
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return SaveReport{}, errors.Wrap(err, "failed to commit batch")
	}

	repo.known.Add(inserted...)
	return report, nil
}

func (repo *Jobs) insertIfAbsent(tx *gorm.DB, job *entities.Job, now time.Time) (bool, error) {
	found, err := exists(tx, *job)
	if err != nil {
		return false, errors.Wrap(err, "existence check")
	}
	if found {
		return false, nil
	}

	job.ID = 0
	job.IsActive = true
	if job.ScrapedAt.IsZero() {
		job.ScrapedAt = now
	}
	job.ExpiresAt = now.Add(repo.retention)

	if err := tx.Create(job).Error; err != nil {
		return false, errors.Wrap(err, "insert")
	}
	return true, nil
}

// DeactivateExpired marks every active job whose expiry has passed as inactive.
func (repo *Jobs) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).
		Model(&entities.Job{}).
		Where("is_active = ? AND expires_at < ?", true, now.UTC()).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

func (repo *Jobs) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Job{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
