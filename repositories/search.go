package repositories

import (
	"gin-heyvankala/models"
	"strings"
)

// matchesQuery itemNameかdescriptionにneedleを含むか。needleは小文字化済みであること
func matchesQuery(p models.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.ItemName), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

func filterProducts(products []models.Product, query string) []models.Product {
	needle := strings.ToLower(query)
	matched := []models.Product{}
	for _, p := range products {
		if matchesQuery(p, needle) {
			matched = append(matched, p)
		}
	}
	return matched
}
