package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maxaizer/job-ingest/internal/classifier"
	"github.com/maxaizer/job-ingest/internal/clients/jobspy"
	"github.com/maxaizer/job-ingest/internal/entities"
	"github.com/maxaizer/job-ingest/internal/logger"
	"github.com/maxaizer/job-ingest/internal/normalize"
	log "github.com/sirupsen/logrus"
)

const (
	maxTags          = 5
	salaryPeriod     = "yearly"
	fallbackPlatform = "jobspy"
)

type SkipReason string

const (
	SkipMissingTitle   SkipReason = "missing_title"
	SkipMissingCompany SkipReason = "missing_company"
	SkipDuplicate      SkipReason = "duplicate"
	SkipBuildError     SkipReason = "build_error"
)

// BuildResult holds either a Job or the reason the posting was dropped.
type BuildResult struct {
	Job  *entities.Job
	Skip SkipReason
	Err  error
}

func (r BuildResult) Skipped() bool {
	return r.Job == nil
}

// PairContext describes the search that produced a posting.
type PairContext struct {
	SearchTerm string
	Location   string
	Country    string
}

type CategorySuggester interface {
	SuggestCategory(ctx context.Context, title, description string) (entities.Category, entities.Subcategory, error)
}

type RecordBuilder struct {
	suggester CategorySuggester
	now       func() time.Time
}

// NewRecordBuilder accepts a nil suggester, in which case uncategorized postings stay general/other.
func NewRecordBuilder(suggester CategorySuggester) *RecordBuilder {
	return &RecordBuilder{suggester: suggester, now: time.Now}
}

func (b *RecordBuilder) Build(ctx context.Context, posting jobspy.Posting, pair PairContext) (result BuildResult) {

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic while building record: %v", r)
			log.WithFields(log.Fields{
				"title":               jobspy.Text(posting.Title),
				"company":             jobspy.Text(posting.Company),
				logger.ErrorTypeField: logger.ErrorTypeBuild,
			}).Error(err)
			result = BuildResult{Skip: SkipBuildError, Err: err}
		}
	}()

	title := normalize.Truncate(jobspy.Text(posting.Title), normalize.MaxTitleLength)
	if title == "" {
		return BuildResult{Skip: SkipMissingTitle}
	}
	company := normalize.Truncate(jobspy.Text(posting.Company), normalize.MaxTitleLength)
	if company == "" {
		return BuildResult{Skip: SkipMissingCompany}
	}

	locationRaw := firstNonEmpty(jobspy.Text(posting.Location), pair.Location, normalize.RemoteLocation)
	location := normalize.ParseLocation(locationRaw, normalize.CountryCodeFor(pair.Country))
	description := normalize.CleanDescription(jobspy.Text(posting.Description))

	preliminary := classifier.ExtractSkills(title, description, "")
	category, subcategory := classifier.Categorize(title, preliminary, description)
	if category == entities.CategoryGeneral {
		category, subcategory = b.suggest(ctx, title, description, category, subcategory)
	}

	skills := classifier.ExtractSkills(title, description, category)
	salary := normalize.CleanSalary(posting.MinAmount, posting.MaxAmount, location.CountryCode)
	site := strings.ToLower(firstNonEmpty(jobspy.Text(posting.Site), fallbackPlatform))
	jobURL := jobspy.Text(posting.JobURL)

	job := &entities.Job{
		Title:              title,
		Company:            company,
		Description:        description,
		LocationRaw:        locationRaw,
		CountryCode:        location.CountryCode,
		Region:             location.Region,
		City:               location.City,
		LocationNormalized: location.Normalized,
		WorkMode:           classifier.WorkMode(title, description, locationRaw),
		JobType:            jobspy.Text(posting.JobType),
		ExperienceLevel:    classifier.ExperienceLevel(title, description),
		SalaryMin:          salary.Min,
		SalaryMax:          salary.Max,
		SalaryRangeDisplay: salary.Display,
		Currency:           salary.Currency,
		SalaryPeriod:       salaryPeriod,
		Skills:             skills,
		Tags:               tagsOf(skills),
		Category:           string(category),
		Subcategory:        string(subcategory),
		Language:           classifier.Language(title, description, location.CountryCode),
		SourceURL:          jobURL,
		SourcePlatform:     site,
		DatePosted:         posting.DatePosted.Ptr(),
		ScrapedAt:          b.now().UTC(),
		IsActive:           true,
	}
	job.ExternalID = ExternalID(site, jobURL, title, company, locationRaw)

	return BuildResult{Job: job}
}

func (b *RecordBuilder) suggest(ctx context.Context, title, description string,
	category entities.Category, subcategory entities.Subcategory) (entities.Category, entities.Subcategory) {

	if b.suggester == nil {
		return category, subcategory
	}

	suggestedCategory, suggestedSub, err := b.suggester.SuggestCategory(ctx, title, description)
	if err != nil {
		log.WithField("title", title).WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).
			Errorf("failed to suggest category: %v", err)
		return category, subcategory
	}
	if !entities.IsKnownClassification(suggestedCategory, suggestedSub) {
		log.WithField("title", title).Warnf("ignoring unknown category suggestion %s/%s", suggestedCategory, suggestedSub)
		return category, subcategory
	}
	return suggestedCategory, suggestedSub
}

// ExternalID is stable across runs: a name-based UUID of the site and job URL,
// or of the title, company and location when the URL is missing.
func ExternalID(site, jobURL, title, company, location string) string {
	name := site + "|" + jobURL
	if jobURL == "" {
		name = strings.ToLower(title + "|" + company + "|" + location)
	}
	return site + "_" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

func tagsOf(skills []string) []string {
	if len(skills) > maxTags {
		skills = skills[:maxTags]
	}
	return append([]string{}, skills...)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
