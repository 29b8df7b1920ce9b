package classifier

import (
	"testing"

	"github.com/maxaizer/job-ingest/internal/entities"
	"github.com/stretchr/testify/assert"
)

func Test_Categorize(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		skills      []string
		description string
		category    entities.Category
		subcategory entities.Subcategory
	}{
		{"frontend by title", "Senior Frontend Engineer", []string{"react"}, "", entities.CategoryTech, entities.SubFrontend},
		{"frontend by skills", "Software Engineer", []string{"Vue"}, "", entities.CategoryTech, entities.SubFrontend},
		{"backend", "Backend Developer", nil, "", entities.CategoryTech, entities.SubBackend},
		{"fullstack", "Full Stack Developer", nil, "", entities.CategoryTech, entities.SubFullstack},
		{"devops", "DevOps Engineer", nil, "", entities.CategoryTech, entities.SubDevops},
		{"mobile by skills", "Developer", []string{"Swift"}, "", entities.CategoryTech, entities.SubMobile},
		{"software fallback", "Software Engineer", nil, "", entities.CategoryTech, entities.SubSoftwareEngineering},
		{"data scientist", "Data Scientist", nil, "", entities.CategoryTech, entities.SubDataScience},
		{"data analyst", "Data Analyst", nil, "", entities.CategoryTech, entities.SubDataAnalytics},
		{"ux", "UX Designer", nil, "", entities.CategoryDesign, entities.SubUX},
		{"ui", "UI Designer", nil, "", entities.CategoryDesign, entities.SubUI},
		{"product design", "Product Designer", nil, "", entities.CategoryDesign, entities.SubProductDesign},
		{"visual design", "Graphic Designer", nil, "", entities.CategoryDesign, entities.SubVisualDesign},
		{"product", "Product Manager", nil, "", entities.CategoryProduct, entities.SubProductManagement},
		{"marketing", "Social Media Manager", nil, "", entities.CategoryMarketing, entities.SubDigitalMarketing},
		{"sales", "Account Manager", nil, "", entities.CategorySales, entities.SubBusinessDevelopment},
		{"unmatched", "Warehouse Associate", nil, "Pick and pack orders.", entities.CategoryGeneral, entities.SubOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, subcategory := Categorize(tt.title, tt.skills, tt.description)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.subcategory, subcategory)
		})
	}
}

func Test_Categorize_EngineeringIsCheckedBeforeData(t *testing.T) {
	category, subcategory := Categorize("Machine Learning Engineer", nil, "")
	assert.Equal(t, entities.CategoryTech, category)
	assert.Equal(t, entities.SubSoftwareEngineering, subcategory)
}

func Test_Categorize_MatchesInflectedTitles(t *testing.T) {
	tests := []struct {
		title       string
		category    entities.Category
		subcategory entities.Subcategory
	}{
		{"Senior Developers", entities.CategoryTech, entities.SubSoftwareEngineering},
		{"Engineering Manager", entities.CategoryTech, entities.SubSoftwareEngineering},
		{"Data Scientists", entities.CategoryTech, entities.SubDataScience},
		{"Graphic Designers", entities.CategoryDesign, entities.SubVisualDesign},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			category, subcategory := Categorize(tt.title, nil, "")
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.subcategory, subcategory)
		})
	}
}

func Test_Categorize_ShortKeywordsMatchInsideWords(t *testing.T) {
	category, subcategory := Categorize("Office Assistant", nil, "A driving licence is required.")
	assert.Equal(t, entities.CategoryDesign, category)
	assert.Equal(t, entities.SubUI, subcategory)
}

func Test_CategoryRules_Order(t *testing.T) {
	var names []string
	for _, rule := range CategoryRules {
		names = append(names, rule.Name)
	}
	assert.Equal(t, []string{"engineering", "data", "design", "product", "marketing", "sales"}, names)
}
