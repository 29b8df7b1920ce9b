package jobspy

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MaxResultsPerCall = 15
	DefaultHoursOld   = 168
)

type Site string

const (
	Indeed       Site = "indeed"
	LinkedIn     Site = "linkedin"
	ZipRecruiter Site = "zip_recruiter"
	Glassdoor    Site = "glassdoor"
	Google       Site = "google"
	Naukri       Site = "naukri"
)

// indeedCountries maps scrape-config country names onto the values Indeed accepts.
var indeedCountries = map[string]string{
	"USA": "usa", "INDIA": "india", "UK": "uk", "GERMANY": "germany",
	"FRANCE": "france", "SPAIN": "spain", "ITALY": "italy", "NETHERLANDS": "netherlands",
}

func IndeedCountry(country string) string {
	if value, ok := indeedCountries[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return value
	}
	return "usa"
}

type SearchParameters struct {
	Sites             []Site `json:"site_name" validate:"required,min=1,dive,required"`
	SearchTerm        string `json:"search_term" validate:"required"`
	Location          string `json:"location"`
	ResultsWanted     int    `json:"results_wanted" validate:"gte=1,lte=15"`
	HoursOld          int    `json:"hours_old" validate:"gte=0"`
	CountryIndeed     string `json:"country_indeed,omitempty"`
	IsRemote          bool   `json:"is_remote"`
	DescriptionFormat string `json:"description_format,omitempty" validate:"omitempty,oneof=html markdown"`
}

var validate = validator.New()

func (s SearchParameters) Validate() error {
	return validate.Struct(s)
}
