package catalog

import "fmt"

// Preset is a named scrape configuration. Fields left empty in a request are taken from it.
type Preset struct {
	SearchTerms   []string
	Locations     []string
	JobSites      []string
	ResultsWanted int
	Country       string
}

var presets = map[string]Preset{
	"tech": {
		SearchTerms: []string{
			"software engineer", "frontend developer", "backend developer",
			"full stack developer", "data scientist", "devops engineer",
		},
		Locations:     []string{"New York, NY", "San Francisco, CA", "Los Angeles, CA", "Austin, TX", "Seattle, WA", "Remote"},
		JobSites:      []string{"indeed", "linkedin"},
		ResultsWanted: 30,
		Country:       "USA",
	},
	"remote": {
		SearchTerms: []string{
			"remote software engineer", "remote developer", "remote data scientist",
			"remote product manager", "remote designer",
		},
		Locations:     []string{"Remote", "Anywhere"},
		JobSites:      []string{"indeed", "linkedin"},
		ResultsWanted: 40,
		Country:       "USA",
	},
	"international": {
		SearchTerms:   []string{"software engineer", "data analyst", "product manager"},
		Locations:     append(append(append([]string{}, Locations[India][:2]...), Locations[Europe][:2]...), Locations[USA][:2]...),
		JobSites:      []string{"indeed", "linkedin"},
		ResultsWanted: 45,
		Country:       "USA",
	},
	"business": {
		SearchTerms:   SearchTerms["business"][:6],
		Locations:     DefaultLocations,
		ResultsWanted: 30,
		Country:       "USA",
	},
	"entry_level": {
		SearchTerms:   SearchTerms["entry_level"][:5],
		Locations:     DefaultLocations,
		ResultsWanted: 25,
		Country:       "USA",
	},
}

func LookupPreset(name string) (Preset, error) {
	preset, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q", name)
	}
	return preset, nil
}

func PresetNames() []string {
	return []string{"business", "entry_level", "international", "remote", "tech"}
}
