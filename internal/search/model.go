package search

// Category selects which entity a search runs against.
type Category string

const (
	CategoryBrand   Category = "brand"
	CategoryProduct Category = "product"
	CategoryRecipe  Category = "recipe"
)

// ParseCategory maps the category query parameter; empty means product.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case "":
		return CategoryProduct, true
	case CategoryBrand, CategoryProduct, CategoryRecipe:
		return Category(s), true
	default:
		return "", false
	}
}

// Result is the normalized shape of a match. Name is the English value.
type Result struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	NameAr       string   `json:"nameAr"`
	Category     Category `json:"category"`
	Image        *string  `json:"image"`
	Color        *string  `json:"color,omitempty"`
	CategoryName *string  `json:"categoryName,omitempty"`
	BrandName    *string  `json:"brandName,omitempty"`
	Level        *string  `json:"level,omitempty"`
	PrepTime     *int     `json:"prepTime,omitempty"`
	CookingTime  *int     `json:"cookingTime,omitempty"`
}
