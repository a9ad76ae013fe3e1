// Package catalog selects the products shown for a category.
package catalog

import (
	"strings"

	"github.com/babitas-kitchen/storefront/internal/models"
)

// Filter returns the products belonging to the category named selected.
//
// models.AllProducts returns every product. Otherwise the category is
// looked up by display name and products whose tag equals the lower-cased
// name are kept. An unknown name yields an empty, non-nil slice.
func Filter(products []models.Product, categories []models.Category, selected string) []models.Product {
	if selected == models.AllProducts {
		out := make([]models.Product, len(products))
		copy(out, products)
		return out
	}

	out := make([]models.Product, 0)
	cat, ok := Find(categories, selected)
	if !ok {
		return out
	}

	tag := strings.ToLower(cat.Name)
	for _, p := range products {
		if p.Category == tag {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the category whose display name is exactly name.
func Find(categories []models.Category, name string) (models.Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return models.Category{}, false
}
