package repositories

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/maxaizer/job-ingest/internal/entities"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

// NewDbContext opens PostgreSQL for postgres URLs and key/value DSNs, and SQLite for anything else.
func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(dialectorFor(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func dialectorFor(connectionString string) gorm.Dialector {
	if isPostgres(connectionString) {
		return postgres.Open(connectionString)
	}
	return sqlite.Open(connectionString)
}

func isPostgres(connectionString string) bool {
	lower := strings.ToLower(strings.TrimSpace(connectionString))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return true
	}
	return strings.Contains(lower, "host=") && strings.Contains(lower, "dbname=")
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.Job{})
	if err != nil {
		return fmt.Errorf("failed to migrate Job entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.ScrapeRun{})
	if err != nil {
		return fmt.Errorf("failed to migrate ScrapeRun entity: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
