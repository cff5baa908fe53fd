package repositories

import (
	"context"
	"testing"
	"time"

	"akbstore/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProductRepository(t *testing.T) {
	testProductRepository(t, func(t *testing.T) ProductRepository {
		return NewMemoryProductRepository()
	})
}

func TestMemoryProductRepository_DuplicateIDRejectsBatch(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()
	catalog := models.DefaultCatalog(time.Now())

	require.NoError(t, repo.InsertMany(ctx, catalog[:2]))
	err := repo.InsertMany(ctx, catalog[1:4])
	assert.Error(t, err)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemoryProductRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()
	require.NoError(t, repo.InsertMany(ctx, models.DefaultCatalog(time.Now())[:1]))

	p, err := repo.GetByID(ctx, "akb-001")
	require.NoError(t, err)
	p.Tags[0] = "changed"
	p.Stock = 0

	again, err := repo.GetByID(ctx, "akb-001")
	require.NoError(t, err)
	assert.Equal(t, "German", again.Tags[0])
	assert.Equal(t, models.UnlimitedStock, again.Stock)
}

func TestProductFilter_Matches(t *testing.T) {
	p := models.Product{
		Name:     "Eagle Horn Grill",
		Category: "Horn Grills",
		Tags:     []string{"Polished Aluminum"},
		SKU:      "AKB-006-EG-AL",
		Status:   models.StatusActive,
	}

	assert.True(t, ProductFilter{}.Matches(p))
	assert.True(t, ProductFilter{Category: "GRILL"}.Matches(p))
	assert.True(t, ProductFilter{Search: "aluminum"}.Matches(p))
	assert.True(t, ProductFilter{Search: "eg-al"}.Matches(p))
	assert.False(t, ProductFilter{Search: "wolfsburg"}.Matches(p))
	assert.False(t, ProductFilter{Category: "Knob", Search: "eagle"}.Matches(p))

	p.Status = models.StatusInactive
	assert.False(t, ProductFilter{ActiveOnly: true}.Matches(p))
	assert.True(t, ProductFilter{}.Matches(p))
}
