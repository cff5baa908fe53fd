package repositories

import (
	"context"
	"errors"
	"strings"

	"akbstore/internal/models"
)

// ErrProductNotFound is returned when no record carries the requested id.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a product listing. Empty strings disable the
// corresponding criterion. Category and Search match as case-insensitive
// literal substrings; Search looks at name, description, tags and sku.
type ProductFilter struct {
	Category   string
	Search     string
	ActiveOnly bool
	Limit      int
}

// ProductRepository defines the interface for product data access.
// Results of Find come back in store order, which is not guaranteed stable.
type ProductRepository interface {
	Find(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	DistinctActiveCategories(ctx context.Context) ([]string, error)
	InsertMany(ctx context.Context, products []models.Product) error
	Count(ctx context.Context) (int64, error)
	Close(ctx context.Context) error
}

// Matches reports whether p satisfies the filter's criteria, ignoring Limit.
// The memory backend uses it directly; the others translate the same rules
// into their query language.
func (f ProductFilter) Matches(p models.Product) bool {
	if f.ActiveOnly && !p.IsActive() {
		return false
	}
	if f.Category != "" && !containsFold(p.Category, f.Category) {
		return false
	}
	if f.Search == "" {
		return true
	}
	if containsFold(p.Name, f.Search) || containsFold(p.Description, f.Search) || containsFold(p.SKU, f.Search) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, f.Search) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
