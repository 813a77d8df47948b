package catalog

import "strings"

// Category is a named group of products
type Category struct {
	Name     string
	Products []string
}

// Catalog is a read-only, ordered list of product categories.
// Lookups scan categories in declaration order.
type Catalog struct {
	categories []Category
}

// defaultCategories is the mock product data shipped with the assistant
var defaultCategories = []Category{
	{Name: "beef", Products: []string{"Angus Beef Ribeye", "Grass-Fed Beef Tenderloin"}},
	{Name: "chicken", Products: []string{"Organic Whole Chicken", "Chicken Breast Fillets"}},
	{Name: "lamb", Products: []string{"New Zealand Lamb Chops", "Lamb Shoulder"}},
}

// NewCatalog creates a catalog from the given categories. The input is copied.
func NewCatalog(categories []Category) *Catalog {
	c := &Catalog{categories: make([]Category, len(categories))}
	for i, cat := range categories {
		c.categories[i] = Category{
			Name:     cat.Name,
			Products: append([]string(nil), cat.Products...),
		}
	}
	return c
}

// DefaultCatalog returns the built-in product catalog
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultCategories)
}

// FindFirst returns the first category whose name contains query.
// The comparison is done on the lowercased query only; category names are stored lowercase.
func (c *Catalog) FindFirst(query string) (Category, bool) {
	q := strings.ToLower(query)
	for _, cat := range c.categories {
		if strings.Contains(cat.Name, q) {
			return Category{
				Name:     cat.Name,
				Products: append([]string(nil), cat.Products...),
			}, true
		}
	}
	return Category{}, false
}

// Categories returns the category names in catalog order
func (c *Catalog) Categories() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}
