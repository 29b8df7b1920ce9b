package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/maxaizer/job-ingest/internal/clients/jobspy"
	"github.com/maxaizer/job-ingest/internal/entities"
	"github.com/maxaizer/job-ingest/internal/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSuggester struct {
	mock.Mock
}

func (m *mockSuggester) SuggestCategory(ctx context.Context, title, description string) (entities.Category, entities.Subcategory, error) {
	args := m.Called(ctx, title, description)
	if f, ok := args.Get(0).(func()); ok {
		f()
	}
	category, _ := args.Get(0).(entities.Category)
	subcategory, _ := args.Get(1).(entities.Subcategory)
	return category, subcategory, args.Error(2)
}

func strPtr(s string) *string {
	return &s
}

func backendPosting() jobspy.Posting {
	return jobspy.Posting{
		Title:       strPtr("Senior Backend Engineer"),
		Company:     strPtr(" Acme Payments "),
		Location:    strPtr("Austin, TX, US"),
		Description: strPtr("<p>We build payments infrastructure in <b>Go</b> and PostgreSQL on Kubernetes.</p>"),
		JobURL:      strPtr("https://www.indeed.com/viewjob?jk=8f2c1d"),
		Site:        strPtr("Indeed"),
		JobType:     strPtr("fulltime"),
		DatePosted:  &jobspy.PostedDate{Time: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
		MinAmount:   normalize.AmountOf(140000),
		MaxAmount:   normalize.AmountOf(175000),
	}
}

var austinPair = PairContext{SearchTerm: "backend engineer", Location: "Austin, TX", Country: "USA"}

func Test_RecordBuilder_Build_NormalizesPosting(t *testing.T) {
	builder := NewRecordBuilder(nil)
	now := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)
	builder.now = func() time.Time { return now }

	result := builder.Build(context.Background(), backendPosting(), austinPair)
	require.False(t, result.Skipped())
	job := result.Job

	assert.Equal(t, "Senior Backend Engineer", job.Title)
	assert.Equal(t, "Acme Payments", job.Company)
	assert.Equal(t, "We build payments infrastructure in Go and PostgreSQL on Kubernetes.", job.Description)
	assert.Equal(t, "US", job.CountryCode)
	assert.Equal(t, "Austin", job.City)
	assert.Equal(t, "TX", job.Region)
	assert.Equal(t, "Austin, TX", job.LocationNormalized)
	assert.Equal(t, string(entities.CategoryTech), job.Category)
	assert.Equal(t, string(entities.SubBackend), job.Subcategory)
	assert.Equal(t, entities.Senior, job.ExperienceLevel)
	assert.Equal(t, entities.Onsite, job.WorkMode)
	assert.Equal(t, []string{"Go", "Kubernetes", "SQL", "PostgreSQL"}, []string(job.Skills))
	assert.Equal(t, []string{"Go", "Kubernetes", "SQL", "PostgreSQL"}, []string(job.Tags))
	require.NotNil(t, job.SalaryRangeDisplay)
	assert.Equal(t, "$140,000 - $175,000", *job.SalaryRangeDisplay)
	assert.Equal(t, "USD", job.Currency)
	assert.Equal(t, "yearly", job.SalaryPeriod)
	assert.Equal(t, "en", job.Language)
	assert.Equal(t, "indeed", job.SourcePlatform)
	assert.Equal(t, "fulltime", job.JobType)
	require.NotNil(t, job.DatePosted)
	assert.Equal(t, now, job.ScrapedAt)
	assert.True(t, strings.HasPrefix(job.ExternalID, "indeed_"))
	assert.Equal(t, ExternalID("indeed", "https://www.indeed.com/viewjob?jk=8f2c1d", "", "", ""), job.ExternalID)
}

func Test_RecordBuilder_Build_SkipsMissingRequiredFields(t *testing.T) {
	builder := NewRecordBuilder(nil)

	posting := backendPosting()
	posting.Title = strPtr("  ")
	assert.Equal(t, SkipMissingTitle, builder.Build(context.Background(), posting, austinPair).Skip)

	posting = backendPosting()
	posting.Company = nil
	result := builder.Build(context.Background(), posting, austinPair)
	assert.True(t, result.Skipped())
	assert.Equal(t, SkipMissingCompany, result.Skip)

	posting = backendPosting()
	posting.Company = strPtr("nan")
	assert.Equal(t, SkipMissingCompany, builder.Build(context.Background(), posting, austinPair).Skip)
}

func Test_RecordBuilder_Build_LocationFallsBackToPairThenRemote(t *testing.T) {
	builder := NewRecordBuilder(nil)

	posting := backendPosting()
	posting.Location = nil
	job := builder.Build(context.Background(), posting, austinPair).Job
	require.NotNil(t, job)
	assert.Equal(t, "Austin, TX", job.LocationRaw)

	job = builder.Build(context.Background(), posting, PairContext{SearchTerm: "go"}).Job
	require.NotNil(t, job)
	assert.Equal(t, "Remote", job.LocationRaw)
	assert.Equal(t, "Remote", job.LocationNormalized)
	assert.Equal(t, entities.Remote, job.WorkMode)
}

func Test_RecordBuilder_Build_InvalidSalaryIsDropped(t *testing.T) {
	posting := backendPosting()
	posting.MinAmount = normalize.Amount{Present: true, Invalid: true}

	job := NewRecordBuilder(nil).Build(context.Background(), posting, austinPair).Job
	require.NotNil(t, job)
	assert.Nil(t, job.SalaryMin)
	assert.Nil(t, job.SalaryMax)
	assert.Nil(t, job.SalaryRangeDisplay)
	assert.Equal(t, "USD", job.Currency)
}

func Test_RecordBuilder_Build_ExternalIDWithoutURLIsStable(t *testing.T) {
	posting := backendPosting()
	posting.JobURL = nil
	builder := NewRecordBuilder(nil)

	first := builder.Build(context.Background(), posting, austinPair).Job
	second := builder.Build(context.Background(), posting, austinPair).Job
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ExternalID, second.ExternalID)
	assert.NotEqual(t, ExternalID("indeed", "", "Other", "Acme Payments", "Austin, TX, US"), first.ExternalID)
}

func generalPosting() jobspy.Posting {
	return jobspy.Posting{Title: strPtr("Barista"), Company: strPtr("Coffee Corner"), Location: strPtr("Seattle, WA")}
}

func Test_RecordBuilder_Build_UsesValidSuggestion(t *testing.T) {
	suggester := &mockSuggester{}
	suggester.On("SuggestCategory", mock.Anything, "Barista", "").
		Return(entities.CategorySales, entities.SubBusinessDevelopment, nil)

	job := NewRecordBuilder(suggester).Build(context.Background(), generalPosting(), austinPair).Job
	require.NotNil(t, job)
	assert.Equal(t, "sales", job.Category)
	assert.Equal(t, "business-development", job.Subcategory)
}

func Test_RecordBuilder_Build_IgnoresBadSuggestions(t *testing.T) {
	suggester := &mockSuggester{}
	suggester.On("SuggestCategory", mock.Anything, mock.Anything, mock.Anything).
		Return(entities.CategoryTech, entities.SubUX, nil).Once()
	suggester.On("SuggestCategory", mock.Anything, mock.Anything, mock.Anything).
		Return(entities.Category(""), entities.Subcategory(""), errors.New("quota exceeded")).Once()

	builder := NewRecordBuilder(suggester)
	for i := 0; i < 2; i++ {
		job := builder.Build(context.Background(), generalPosting(), austinPair).Job
		require.NotNil(t, job)
		assert.Equal(t, "general", job.Category)
		assert.Equal(t, "other", job.Subcategory)
	}
}

func Test_RecordBuilder_Build_NotConsultedForCategorizedPostings(t *testing.T) {
	suggester := &mockSuggester{}
	NewRecordBuilder(suggester).Build(context.Background(), backendPosting(), austinPair)
	suggester.AssertNotCalled(t, "SuggestCategory", mock.Anything, mock.Anything, mock.Anything)
}

func Test_RecordBuilder_Build_RecoversFromPanic(t *testing.T) {
	suggester := &mockSuggester{}
	suggester.On("SuggestCategory", mock.Anything, mock.Anything, mock.Anything).
		Return(func() { panic("boom") }, nil, nil)

	result := NewRecordBuilder(suggester).Build(context.Background(), generalPosting(), austinPair)
	assert.True(t, result.Skipped())
	assert.Equal(t, SkipBuildError, result.Skip)
	assert.ErrorContains(t, result.Err, "boom")
}
