package entities

type Category string

const (
	CategoryTech      Category = "tech"
	CategoryDesign    Category = "design"
	CategoryProduct   Category = "product"
	CategoryMarketing Category = "marketing"
	CategorySales     Category = "sales"
	CategoryGeneral   Category = "general"
)

type Subcategory string

const (
	SubFrontend            Subcategory = "frontend"
	SubBackend             Subcategory = "backend"
	SubFullstack           Subcategory = "fullstack"
	SubDevops              Subcategory = "devops"
	SubMobile              Subcategory = "mobile"
	SubDataScience         Subcategory = "data-science"
	SubDataEngineering     Subcategory = "data-engineering"
	SubDataAnalytics       Subcategory = "data-analytics"
	SubSoftwareEngineering Subcategory = "software-engineering"
	SubUX                  Subcategory = "ux"
	SubUI                  Subcategory = "ui"
	SubProductDesign       Subcategory = "product-design"
	SubVisualDesign        Subcategory = "visual-design"
	SubProductManagement   Subcategory = "product-management"
	SubDigitalMarketing    Subcategory = "digital-marketing"
	SubBusinessDevelopment Subcategory = "business-development"
	SubOther               Subcategory = "other"
)

var taxonomy = map[Category][]Subcategory{
	CategoryTech: {SubFrontend, SubBackend, SubFullstack, SubDevops, SubMobile, SubDataScience,
		SubDataEngineering, SubDataAnalytics, SubSoftwareEngineering},
	CategoryDesign:    {SubUX, SubUI, SubProductDesign, SubVisualDesign},
	CategoryProduct:   {SubProductManagement},
	CategoryMarketing: {SubDigitalMarketing},
	CategorySales:     {SubBusinessDevelopment},
	CategoryGeneral:   {SubOther},
}

// IsKnownClassification reports whether the pair belongs to the fixed taxonomy.
func IsKnownClassification(category Category, subcategory Subcategory) bool {
	for _, sub := range taxonomy[category] {
		if sub == subcategory {
			return true
		}
	}
	return false
}

func Taxonomy() map[Category][]Subcategory {
	copied := make(map[Category][]Subcategory, len(taxonomy))
	for k, v := range taxonomy {
		copied[k] = append([]Subcategory(nil), v...)
	}
	return copied
}
