// Package catalog holds the built-in search terms, locations and site lists used to fill scrape configurations.
package catalog

import (
	"strings"

	"github.com/samber/lo"
)

var (
	DefaultSearchTerms = []string{"software engineer", "developer"}
	DefaultLocations   = []string{"Remote", "New York, NY"}
)

const (
	DefaultCountry       = "USA"
	DefaultResultsWanted = 20
)

type Region string

const (
	India  Region = "india"
	USA    Region = "usa"
	Europe Region = "europe"
	Global Region = "global"
)

var SearchTerms = map[string][]string{
	"tech": {
		"software engineer", "software developer", "full stack developer", "frontend developer", "backend developer",
		"python developer", "javascript developer", "react developer", "node.js developer", "java developer",
		"data scientist", "data engineer", "data analyst", "machine learning engineer", "ai engineer",
		"devops engineer", "cloud engineer", "system administrator", "network engineer",
		"mobile developer", "ios developer", "android developer", "react native developer",
		"ui/ux designer", "product designer", "web designer",
		"cybersecurity engineer", "security analyst", "database administrator", "software architect",
	},
	"business": {
		"product manager", "project manager", "business analyst", "operations manager",
		"account manager", "sales representative", "business development manager",
		"marketing manager", "digital marketing manager", "content manager", "social media manager",
		"recruiter", "financial analyst", "consultant",
	},
	"entry_level": {
		"junior software engineer", "entry level developer", "graduate trainee", "software intern",
		"junior data scientist", "associate consultant", "junior analyst", "associate software engineer",
	},
}

var Locations = map[Region][]string{
	India: {
		"Mumbai, India", "Bangalore, India", "Delhi, India", "Hyderabad, India", "Chennai, India",
		"Pune, India", "Kolkata, India", "Gurgaon, India", "Noida, India", "Remote India",
	},
	USA: {
		"New York, NY", "San Francisco, CA", "Los Angeles, CA", "Austin, TX", "Seattle, WA",
		"Chicago, IL", "Boston, MA", "Denver, CO", "Atlanta, GA", "Washington, DC", "Remote USA",
	},
	Europe: {
		"London, UK", "Manchester, UK", "Dublin, Ireland", "Berlin, Germany", "Munich, Germany",
		"Paris, France", "Amsterdam, Netherlands", "Madrid, Spain", "Barcelona, Spain", "Milan, Italy",
		"Stockholm, Sweden", "Copenhagen, Denmark", "Zurich, Switzerland", "Vienna, Austria", "Remote Europe",
	},
}

var siteTable = map[Region][]string{
	India:  {"indeed", "linkedin", "naukri"},
	USA:    {"indeed", "linkedin", "zip_recruiter"},
	Europe: {"indeed", "linkedin"},
	Global: {"indeed", "linkedin"},
}

var europeanCountries = []string{
	"UK", "GERMANY", "FRANCE", "SPAIN", "ITALY", "NETHERLANDS", "IRELAND", "SWITZERLAND",
	"AUSTRIA", "SWEDEN", "DENMARK", "NORWAY", "FINLAND", "BELGIUM", "CZECH REPUBLIC",
}

// RegionOf maps a configuration country name such as "USA" or "india" to its market region.
func RegionOf(country string) Region {
	upper := strings.ToUpper(strings.TrimSpace(country))
	switch {
	case upper == "INDIA":
		return India
	case upper == "USA" || upper == "US" || upper == "UNITED STATES":
		return USA
	case upper == "EUROPE" || lo.Contains(europeanCountries, upper):
		return Europe
	default:
		return Global
	}
}

// SitesFor returns a fresh copy of the job sites that work best for the country.
func SitesFor(country string) []string {
	return append([]string(nil), siteTable[RegionOf(country)]...)
}
