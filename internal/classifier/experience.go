package classifier

import "github.com/maxaizer/job-ingest/internal/entities"

var ExperienceRules = []Rule[entities.ExperienceLevel]{
	{Name: "senior", Keywords: []string{"senior", "sr.", "lead", "principal", "staff", "architect"},
		Result: entities.Senior},
	{Name: "entry", Keywords: []string{"junior", "jr.", "entry", "entry-level", "graduate", "intern",
		"internship", "fresher", "trainee"}, Result: entities.Entry},
	{Name: "mid", Keywords: []string{"mid", "mid-level", "intermediate"}, Result: entities.Mid},
}

// ExperienceLevel defaults to mid when neither title nor description carry a seniority signal.
func ExperienceLevel(title, description string) entities.ExperienceLevel {
	if level, ok := FirstMatch(ExperienceRules, Input{Text: joinLower(title, description)}); ok {
		return level
	}
	return entities.Mid
}
