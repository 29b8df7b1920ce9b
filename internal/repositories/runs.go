package repositories

import (
	"context"

	"github.com/maxaizer/job-ingest/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Runs struct {
	db *gorm.DB
}

func NewRunsRepository(db *gorm.DB) *Runs {
	return &Runs{db: db}
}

func (repo *Runs) Save(ctx context.Context, run entities.ScrapeRun) error {
	return repo.db.WithContext(ctx).Create(&run).Error
}

// Latest returns nil when no run has been recorded yet.
func (repo *Runs) Latest(ctx context.Context) (*entities.ScrapeRun, error) {
	run := &entities.ScrapeRun{}
	err := repo.db.WithContext(ctx).Order("finished_at DESC").First(run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return run, nil
}
