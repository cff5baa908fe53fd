package repositories

import (
	"context"
	"fmt"
	"sync"

	"akbstore/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// Records keep their insertion order.
type MemoryProductRepository struct {
	products []models.Product
	index    map[string]int
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		index: make(map[string]int),
	}
}

// Find returns the products matching filter.
func (r *MemoryProductRepository) Find(_ context.Context, filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Product, 0)
	for _, p := range r.products {
		if filter.Limit > 0 && len(result) >= filter.Limit {
			break
		}
		if filter.Matches(p) {
			result = append(result, clone(p))
		}
	}
	return result, nil
}

// GetByID returns a product by its external id, whatever its status.
func (r *MemoryProductRepository) GetByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := clone(r.products[i])
	return &p, nil
}

// DistinctActiveCategories returns each category of an active product once.
func (r *MemoryProductRepository) DistinctActiveCategories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range r.products {
		if !p.IsActive() {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}

// InsertMany appends products in order. A duplicate id aborts the batch
// before anything is written.
func (r *MemoryProductRepository) InsertMany(_ context.Context, products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	batch := make(map[string]struct{}, len(products))
	for _, p := range products {
		_, exists := r.index[p.ID]
		_, repeated := batch[p.ID]
		if exists || repeated {
			return fmt.Errorf("failed to insert products: duplicate id %s", p.ID)
		}
		batch[p.ID] = struct{}{}
	}
	for _, p := range products {
		r.index[p.ID] = len(r.products)
		r.products = append(r.products, clone(p))
	}
	return nil
}

// Count returns the number of stored products, active or not.
func (r *MemoryProductRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

// Close is a no-op.
func (r *MemoryProductRepository) Close(context.Context) error {
	return nil
}

func clone(p models.Product) models.Product {
	if p.Images != nil {
		p.Images = append([]string{}, p.Images...)
	}
	if p.Tags != nil {
		p.Tags = append([]string{}, p.Tags...)
	}
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		p.OriginalPrice = &v
	}
	return p
}
