package classifier

import (
	"strings"

	"github.com/maxaizer/job-ingest/internal/entities"
	"github.com/samber/lo"
)

const MaxSkills = 15

// Skill is a canonical vocabulary entry. The lower-cased Name always matches; Aliases add spellings.
type Skill struct {
	Name    string
	Aliases []string
}

func (s Skill) keywords() []string {
	return append([]string{strings.ToLower(s.Name)}, s.Aliases...)
}

func skills(names ...string) []Skill {
	return lo.Map(names, func(name string, _ int) Skill { return Skill{Name: name} })
}

var TechSkills = append([]Skill{
	{Name: "Python"}, {Name: "JavaScript"}, {Name: "Java"}, {Name: "C++"}, {Name: "C#"},
	{Name: "Go", Aliases: []string{"golang"}}, {Name: "Rust"}, {Name: "PHP"}, {Name: "Ruby"}, {Name: "Swift"},
	{Name: "Kotlin"}, {Name: "React", Aliases: []string{"react.js", "reactjs"}}, {Name: "Vue", Aliases: []string{"vue.js"}},
	{Name: "Angular"}, {Name: "Node.js", Aliases: []string{"nodejs"}},
}, skills(
	"Express", "Django", "Flask", "Spring", "Laravel",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "Git", "Linux", "SQL", "NoSQL",
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch", "Kafka", "RabbitMQ",
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "Machine Learning", "AI",
	"Figma", "Sketch", "Adobe XD", "Photoshop", "Illustrator",
	"Agile", "Scrum", "Kanban", "JIRA", "Confluence",
)...)

var BusinessSkills = skills(
	"Salesforce", "HubSpot", "CRM", "Google Analytics", "SEO", "SEM", "Excel",
	"PowerBI", "Tableau", "SAP", "QuickBooks", "Financial Modeling",
)

// CategorySkills extend the base vocabulary for postings of a known category.
var CategorySkills = map[entities.Category][]Skill{
	entities.CategoryTech:      skills("TypeScript", "GraphQL", "Terraform", "CI/CD", "Microservices"),
	entities.CategoryDesign:    skills("Wireframing", "Prototyping", "User Research", "InVision", "Canva"),
	entities.CategoryProduct:   skills("Roadmapping", "A/B Testing", "Product Strategy", "Mixpanel"),
	entities.CategoryMarketing: skills("Google Ads", "Facebook Ads", "Content Marketing", "Email Marketing", "Mailchimp", "Copywriting"),
	entities.CategorySales:     skills("Pipedrive", "Zoho CRM", "Lead Generation", "Cold Calling", "Negotiation"),
}

// ExtractSkills returns vocabulary matches in vocabulary order, capped at MaxSkills.
// An empty category restricts the search to the base vocabulary.
func ExtractSkills(title, description string, category entities.Category) []string {
	text := joinLower(title, description)

	vocabulary := append(append([]Skill{}, TechSkills...), BusinessSkills...)
	vocabulary = append(vocabulary, CategorySkills[category]...)

	found := lo.FilterMap(vocabulary, func(skill Skill, _ int) (string, bool) {
		return skill.Name, containsAny(text, skill.keywords())
	})
	found = lo.Uniq(found)

	if len(found) > MaxSkills {
		found = found[:MaxSkills]
	}
	return found
}
