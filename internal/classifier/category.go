package classifier

import (
	"strings"

	"github.com/maxaizer/job-ingest/internal/entities"
)

// CategoryRule is a top-level category group refined by its own ordered subrules.
type CategoryRule struct {
	Rule[entities.Category]
	Subrules []Rule[entities.Subcategory]
	Fallback entities.Subcategory
}

// CategoryRules are evaluated in order; engineering keywords must stay ahead of the data group.
// Keywords are substrings, so short ones such as "ui" also hit longer words.
var CategoryRules = []CategoryRule{
	{
		Rule: Rule[entities.Category]{
			Name:     "engineering",
			Keywords: []string{"engineer", "developer", "programmer", "software"},
			Result:   entities.CategoryTech,
		},
		Subrules: []Rule[entities.Subcategory]{
			{Name: "frontend", Keywords: []string{"frontend", "front-end", "front end"},
				SkillKeywords: []string{"react", "vue", "angular"}, Result: entities.SubFrontend},
			{Name: "backend", Keywords: []string{"backend", "back-end", "back end"}, Result: entities.SubBackend},
			{Name: "fullstack", Keywords: []string{"full stack", "fullstack", "full-stack"}, Result: entities.SubFullstack},
			{Name: "devops", Keywords: []string{"devops", "site reliability"}, Result: entities.SubDevops},
			{Name: "mobile", Keywords: []string{"mobile"},
				SkillKeywords: []string{"ios", "android", "react native", "flutter", "swift", "kotlin"}, Result: entities.SubMobile},
		},
		Fallback: entities.SubSoftwareEngineering,
	},
	{
		Rule: Rule[entities.Category]{
			Name: "data",
			Keywords: []string{"data scientist", "data engineer", "data engineering", "data analyst",
				"machine learning", "ai engineer"},
			Result: entities.CategoryTech,
		},
		Subrules: []Rule[entities.Subcategory]{
			{Name: "data-science", Keywords: []string{"scientist", "science"}, Result: entities.SubDataScience},
			{Name: "data-engineering", Keywords: []string{"engineer", "engineering"}, Result: entities.SubDataEngineering},
		},
		Fallback: entities.SubDataAnalytics,
	},
	{
		Rule: Rule[entities.Category]{
			Name:     "design",
			Keywords: []string{"designer", "design", "ux", "ui", "user experience", "user interface"},
			Result:   entities.CategoryDesign,
		},
		Subrules: []Rule[entities.Subcategory]{
			{Name: "ux", Keywords: []string{"ux", "user experience"}, Result: entities.SubUX},
			{Name: "ui", Keywords: []string{"ui", "user interface"}, Result: entities.SubUI},
			{Name: "product-design", Keywords: []string{"product design", "product designer"}, Result: entities.SubProductDesign},
		},
		Fallback: entities.SubVisualDesign,
	},
	{
		Rule: Rule[entities.Category]{
			Name:     "product",
			Keywords: []string{"product manager", "pm", "product owner"},
			Result:   entities.CategoryProduct,
		},
		Fallback: entities.SubProductManagement,
	},
	{
		Rule: Rule[entities.Category]{
			Name:     "marketing",
			Keywords: []string{"marketing", "growth", "content", "social media"},
			Result:   entities.CategoryMarketing,
		},
		Fallback: entities.SubDigitalMarketing,
	},
	{
		Rule: Rule[entities.Category]{
			Name:     "sales",
			Keywords: []string{"sales", "account manager", "business development"},
			Result:   entities.CategorySales,
		},
		Fallback: entities.SubBusinessDevelopment,
	},
}

// Categorize maps a posting onto the fixed taxonomy. Unmatched text falls to general/other.
func Categorize(title string, skills []string, description string) (entities.Category, entities.Subcategory) {
	in := Input{
		Text:   joinLower(title, description, strings.Join(skills, " ")),
		Skills: strings.ToLower(strings.Join(skills, " ")),
	}

	for _, group := range CategoryRules {
		if !group.Matches(in) {
			continue
		}
		if sub, ok := FirstMatch(group.Subrules, in); ok {
			return group.Result, sub
		}
		return group.Result, group.Fallback
	}

	return entities.CategoryGeneral, entities.SubOther
}
