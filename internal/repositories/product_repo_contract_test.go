package repositories

import (
	"context"
	"testing"
	"time"

	"akbstore/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// retiredProduct is an inactive record used to check status filtering.
func retiredProduct(createdAt time.Time) models.Product {
	p := models.Product{
		ID:          "akb-900",
		Name:        "Retired Wolfsburg Hood Badge",
		Description: "No longer sold",
		Price:       9.99,
		Stock:       3,
		Category:    "Retired Hood Badges",
		Image:       "/images/r0900.png",
		SKU:         "AKB-900-RT",
		Status:      models.StatusInactive,
	}
	models.ApplyDefaults(&p, createdAt)
	return p
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

// testProductRepository runs the behavior every ProductRepository backend
// must share against a fresh, empty store from newRepo.
func testProductRepository(t *testing.T, newRepo func(t *testing.T) ProductRepository) {
	ctx := context.Background()

	seeded := func(t *testing.T) ProductRepository {
		repo := newRepo(t)
		now := time.Now().UTC().Truncate(time.Millisecond)
		products := append(models.DefaultCatalog(now), retiredProduct(now))
		require.NoError(t, repo.InsertMany(ctx, products))
		return repo
	}

	t.Run("count", func(t *testing.T) {
		repo := newRepo(t)
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		repo = seeded(t)
		n, err = repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(21), n)
	})

	t.Run("category is a case-insensitive substring over active products", func(t *testing.T) {
		repo := seeded(t)
		products, err := repo.Find(ctx, ProductFilter{Category: "hood", ActiveOnly: true})
		require.NoError(t, err)
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.Contains(t, []string{"Hood Badges", "Hood Crests"}, p.Category)
			assert.True(t, p.IsActive())
		}
		assert.NotContains(t, productIDs(products), "akb-900")
		assert.Len(t, products, 13)
	})

	t.Run("search spans name, description, tags and sku", func(t *testing.T) {
		repo := seeded(t)
		products, err := repo.Find(ctx, ProductFilter{Search: "WOLFSBURG", ActiveOnly: true})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"akb-002", "akb-004", "akb-005", "akb-010", "akb-011",
			"akb-013", "akb-014", "akb-015", "akb-016", "akb-017",
		}, productIDs(products))

		products, err = repo.Find(ctx, ProductFilter{Search: "religious", ActiveOnly: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"akb-009"}, productIDs(products))

		products, err = repo.Find(ctx, ProductFilter{Search: "akb-013-vwe", ActiveOnly: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"akb-013"}, productIDs(products))
	})

	t.Run("category and search combine with AND", func(t *testing.T) {
		repo := seeded(t)
		products, err := repo.Find(ctx, ProductFilter{Category: "horn", Search: "wolfsburg", ActiveOnly: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"akb-017"}, productIDs(products))
	})

	t.Run("filter text is literal", func(t *testing.T) {
		repo := seeded(t)
		for _, text := range []string{".*", "%", "_", "[a-z]+", `","`, `["`, `"]`, `"`} {
			products, err := repo.Find(ctx, ProductFilter{Search: text, ActiveOnly: true})
			require.NoError(t, err)
			assert.Empty(t, products, "search %q", text)
		}
	})

	t.Run("search matches tag elements as stored", func(t *testing.T) {
		repo := seeded(t)
		p := models.Product{
			ID: "akb-951", Name: "Club Badge", Price: 1, Stock: 1,
			Category: "Hood Badges", Image: "/images/r0951.png", SKU: "AKB-951",
			Tags: []string{"Rock & Roll", "<Club>"},
		}
		models.ApplyDefaults(&p, time.Now().UTC().Truncate(time.Millisecond))
		require.NoError(t, repo.InsertMany(ctx, []models.Product{p}))

		for _, text := range []string{"rock & ROLL", "<club>", "& roll"} {
			products, err := repo.Find(ctx, ProductFilter{Search: text, ActiveOnly: true})
			require.NoError(t, err)
			assert.Equal(t, []string{"akb-951"}, productIDs(products), "search %q", text)
		}

		// Neighbouring tags do not run together.
		products, err := repo.Find(ctx, ProductFilter{Search: "roll<club", ActiveOnly: true})
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("limit bounds the result", func(t *testing.T) {
		repo := seeded(t)
		products, err := repo.Find(ctx, ProductFilter{ActiveOnly: true, Limit: 3})
		require.NoError(t, err)
		assert.Len(t, products, 3)

		products, err = repo.Find(ctx, ProductFilter{ActiveOnly: true, Limit: 50})
		require.NoError(t, err)
		assert.Len(t, products, 20)
	})

	t.Run("get by id ignores status", func(t *testing.T) {
		repo := seeded(t)
		p, err := repo.GetByID(ctx, "akb-001")
		require.NoError(t, err)
		assert.Equal(t, "German Eagle (Federal Court Eagle)", p.Name)
		assert.Equal(t, 39.99, p.Price)
		assert.Equal(t, models.UnlimitedStock, p.Stock)
		assert.Equal(t, []string{"German", "Eagle", "Hood Badge", "90mm", "1956-1976"}, p.Tags)

		p, err = repo.GetByID(ctx, "akb-900")
		require.NoError(t, err)
		assert.Equal(t, models.StatusInactive, p.Status)

		p, err = repo.GetByID(ctx, "nonexistent")
		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("distinct categories of active products", func(t *testing.T) {
		repo := seeded(t)
		categories, err := repo.DistinctActiveCategories(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Hood Badges", "Shift Knobs", "Hood Crests", "Horn Grills"}, categories)
	})
}
