package jobspy

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/maxaizer/job-ingest/internal/normalize"
)

// Posting is one raw row as returned by the provider. Every field may be missing.
type Posting struct {
	Title       *string          `json:"title"`
	Company     *string          `json:"company"`
	Location    *string          `json:"location"`
	Description *string          `json:"description"`
	DatePosted  *PostedDate      `json:"date_posted"`
	JobURL      *string          `json:"job_url"`
	Site        *string          `json:"site"`
	JobType     *string          `json:"job_type"`
	MinAmount   normalize.Amount `json:"min_amount"`
	MaxAmount   normalize.Amount `json:"max_amount"`
	Currency    *string          `json:"currency"`
}

// Text returns the trimmed value of an optional field, treating "nan" and "none" as absent.
func Text(field *string) string {
	if field == nil {
		return ""
	}
	value := strings.TrimSpace(*field)
	switch strings.ToLower(value) {
	case "nan", "none", "null":
		return ""
	}
	return value
}

type PostedDate struct {
	time.Time
}

var postedDateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

// UnmarshalJSON accepts the date layouts the provider is known to emit and epoch milliseconds.
// An unreadable date is left zero rather than failing the whole response.
func (dt *PostedDate) UnmarshalJSON(b []byte) error {
	var millis int64
	if err := json.Unmarshal(b, &millis); err == nil {
		dt.Time = time.UnixMilli(millis).UTC()
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return nil
	}

	for _, layout := range postedDateLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			dt.Time = t
			return nil
		}
	}
	return nil
}

// Ptr returns nil for a missing or unreadable date.
func (dt *PostedDate) Ptr() *time.Time {
	if dt == nil || dt.IsZero() {
		return nil
	}
	t := dt.Time
	return &t
}
