package services

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/maxaizer/job-ingest/internal/catalog"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// ScrapeConfig is the JSON run configuration accepted on the command line.
type ScrapeConfig struct {
	SearchTerms   []string `json:"search_terms" validate:"dive,required"`
	Locations     []string `json:"locations" validate:"dive,required"`
	JobSites      []string `json:"job_sites" validate:"dive,oneof=indeed linkedin zip_recruiter glassdoor google naukri"`
	ResultsWanted int      `json:"results_wanted" validate:"gte=0"`
	Country       string   `json:"country"`
	Preset        string   `json:"preset,omitempty"`
}

// RunDefaults fill in whatever a ScrapeConfig leaves empty.
type RunDefaults struct {
	ResultsWanted int
	Country       string
}

var configValidator = validator.New()

// ParseScrapeConfig falls back to an empty configuration, and so to the defaults, when raw is not valid JSON.
func ParseScrapeConfig(raw string) ScrapeConfig {
	var cfg ScrapeConfig
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return cfg
	}
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		log.Warnf("invalid scrape config, using defaults: %v", err)
		return ScrapeConfig{}
	}
	return cfg
}

// Resolve applies the preset, then the built-in defaults, and validates the result.
func (c ScrapeConfig) Resolve(defaults RunDefaults) (ScrapeConfig, error) {
	resolved := c
	resolved.SearchTerms = cleanList(c.SearchTerms)
	resolved.Locations = cleanList(c.Locations)
	resolved.JobSites = lo.Map(cleanList(c.JobSites), func(site string, _ int) string { return strings.ToLower(site) })

	if c.Preset != "" {
		preset, err := catalog.LookupPreset(c.Preset)
		if err != nil {
			return resolved, err
		}
		resolved.SearchTerms = orDefault(resolved.SearchTerms, preset.SearchTerms)
		resolved.Locations = orDefault(resolved.Locations, preset.Locations)
		resolved.JobSites = orDefault(resolved.JobSites, preset.JobSites)
		if resolved.ResultsWanted == 0 {
			resolved.ResultsWanted = preset.ResultsWanted
		}
		if resolved.Country == "" {
			resolved.Country = preset.Country
		}
	}

	resolved.SearchTerms = orDefault(resolved.SearchTerms, catalog.DefaultSearchTerms)
	resolved.Locations = orDefault(resolved.Locations, catalog.DefaultLocations)
	if resolved.Country == "" {
		resolved.Country = lo.Ternary(defaults.Country != "", defaults.Country, catalog.DefaultCountry)
	}
	if resolved.ResultsWanted == 0 {
		resolved.ResultsWanted = lo.Ternary(defaults.ResultsWanted > 0, defaults.ResultsWanted, catalog.DefaultResultsWanted)
	}
	resolved.JobSites = orDefault(resolved.JobSites, catalog.SitesFor(resolved.Country))

	return resolved, configValidator.Struct(resolved)
}

// PerPairQuota spreads the wanted total evenly over every term and location pair.
func (c ScrapeConfig) PerPairQuota() int {
	pairs := len(c.SearchTerms) * len(c.Locations)
	if pairs == 0 {
		return 1
	}
	return max(1, c.ResultsWanted/pairs)
}

func cleanList(values []string) []string {
	return lo.FilterMap(values, func(value string, _ int) (string, bool) {
		value = strings.TrimSpace(value)
		return value, value != ""
	})
}

func orDefault(values, fallback []string) []string {
	if len(values) > 0 {
		return values
	}
	return append([]string(nil), fallback...)
}
