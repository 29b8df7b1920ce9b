package classifier

import (
	"strings"

	"github.com/maxaizer/job-ingest/internal/entities"
)

var WorkModeRules = []Rule[entities.WorkMode]{
	{Name: "remote", Keywords: []string{"remote", "fully remote", "work from home", "work-from-home", "wfh",
		"telecommute", "telework"}, Result: entities.Remote},
	{Name: "hybrid", Keywords: []string{"hybrid", "flexible working", "days in office", "days in the office"},
		Result: entities.Hybrid},
	{Name: "onsite", Keywords: []string{"on-site", "onsite", "on site", "in-office", "in office", "office-based",
		"office based"}, Result: entities.Onsite},
}

func WorkMode(title, description, location string) entities.WorkMode {
	if mode, ok := FirstMatch(WorkModeRules, Input{Text: joinLower(title, description)}); ok {
		return mode
	}
	if strings.Contains(strings.ToLower(location), "remote") {
		return entities.Remote
	}
	return entities.Onsite
}
