package entities

import (
	"time"

	"gorm.io/datatypes"
)

type WorkMode string

const (
	Remote WorkMode = "remote"
	Hybrid WorkMode = "hybrid"
	Onsite WorkMode = "onsite"
)

type ExperienceLevel string

const (
	Entry  ExperienceLevel = "entry"
	Mid    ExperienceLevel = "mid"
	Senior ExperienceLevel = "senior"
)

// Job is a normalized posting as it is stored in the scraped_jobs table.
type Job struct {
	ID                 uint   `gorm:"primaryKey"`
	ExternalID         string `gorm:"index;size:128"`
	Title              string `gorm:"size:255"`
	Company            string `gorm:"size:255"`
	Description        string
	LocationRaw        string `gorm:"size:255"`
	CountryCode        string `gorm:"size:16"`
	Region             string `gorm:"size:100"`
	City               string `gorm:"size:100"`
	LocationNormalized string `gorm:"size:255"`
	WorkMode           WorkMode
	JobType            string
	ExperienceLevel    ExperienceLevel
	SalaryMin          *int64
	SalaryMax          *int64
	SalaryRangeDisplay *string
	Currency           string `gorm:"size:3"`
	SalaryPeriod       string
	Skills             datatypes.JSONSlice[string]
	Tags               datatypes.JSONSlice[string]
	Category           string
	Subcategory        string
	Language           string `gorm:"size:2"`
	SourceURL          string `gorm:"size:500"`
	SourcePlatform     string `gorm:"size:50"`
	DatePosted         *time.Time
	ScrapedAt          time.Time
	ExpiresAt          time.Time `gorm:"index"`
	IsActive           bool      `gorm:"default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Job) TableName() string {
	return "scraped_jobs"
}

// DedupKey is the title+company pair used to collapse duplicates inside one run.
func (j Job) DedupKey() string {
	return j.Title + "\x00" + j.Company
}
