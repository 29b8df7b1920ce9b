package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseLocation(t *testing.T) {
	tests := []struct {
		raw      string
		hint     string
		expected Location
	}{
		{"Remote", "", Location{"US", "Remote", "Remote", "Remote"}},
		{"Remote India", "IN", Location{"IN", "Remote", "Remote", "Remote"}},
		{"Bangalore, India", "", Location{"IN", "India", "Bangalore", "Bangalore, India"}},
		{"New York, NY", "", Location{"US", "NY", "New York", "New York, NY"}},
		{"London, UK", "", Location{"GB", "UK", "London", "London, UK"}},
		{"Berlin", "", Location{"DE", "", "Berlin", "Berlin"}},
		{"Zürich, Switzerland", "", Location{"CH", "Switzerland", "Zürich", "Zürich, Switzerland"}},
		{"Greater Seattle Area, WA, USA", "", Location{"US", "WA", "Greater Seattle", "Greater Seattle, WA"}},
		{"Paris Metropolitan, Paris", "", Location{"FR", "Paris", "Paris", "Paris"}},
		{"Springfield", "GB", Location{"GB", "", "Springfield", "Springfield"}},
		{"Springfield", "", Location{"US", "", "Springfield", "Springfield"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLocation(tt.raw, tt.hint))
		})
	}
}

func Test_ParseLocation_AbbreviationsAreCaseSensitive(t *testing.T) {
	location := ParseLocation("Cairo, Egypt", "")
	assert.Equal(t, "US", location.CountryCode)

	location = ParseLocation("Toronto, Canada", "")
	assert.Equal(t, "CA", location.CountryCode)
}

func Test_CountryCodeFor(t *testing.T) {
	assert.Equal(t, "US", CountryCodeFor("USA"))
	assert.Equal(t, "IN", CountryCodeFor(" india "))
	assert.Equal(t, "GB", CountryCodeFor("UK"))
	assert.Equal(t, "", CountryCodeFor("atlantis"))
}
