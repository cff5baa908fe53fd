package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"akbstore/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
// It backs the postgres and sqlite store drivers.
type GORMProductRepository struct {
	db *gorm.DB
	// fold matches the case folding of the dialect's LOWER().
	fold func(string) string
	// tagsClause matches one element of the JSON-encoded tags column.
	tagsClause string
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	r := &GORMProductRepository{
		db:   db,
		fold: strings.ToLower,
		tagsClause: "EXISTS (SELECT 1 FROM jsonb_array_elements_text(products.tags::jsonb) AS t(tag) " +
			"WHERE " + likeClause("t.tag") + ")",
	}
	if db.Dialector.Name() == "sqlite" {
		// SQLite's LOWER() folds ASCII only.
		r.fold = asciiLower
		r.tagsClause = "EXISTS (SELECT 1 FROM json_each(products.tags) WHERE " + likeClause("json_each.value") + ")"
	}
	return r
}

// OpenGORMProductRepository opens dialector and migrates the products table.
func OpenGORMProductRepository(dialector gorm.Dialector, cfg *gorm.Config) (*GORMProductRepository, error) {
	if cfg == nil {
		cfg = &gorm.Config{}
	}
	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialector.Name(), err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return nil, fmt.Errorf("failed to migrate products table: %w", err)
	}
	return NewGORMProductRepository(db), nil
}

// Find retrieves the products matching filter.
func (r *GORMProductRepository) Find(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if filter.ActiveOnly {
		q = q.Where("status = ?", models.StatusActive)
	}
	if filter.Category != "" {
		q = q.Where(likeClause("category"), likePattern(filter.Category, r.fold))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search, r.fold)
		q = q.Where(r.db.Where(likeClause("name"), pattern).
			Or(likeClause("description"), pattern).
			Or(r.tagsClause, pattern).
			Or(likeClause("sku"), pattern))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	products := make([]models.Product, 0)
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// DistinctActiveCategories returns the categories of active products.
func (r *GORMProductRepository) DistinctActiveCategories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("status = ?", models.StatusActive).
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct categories: %w", err)
	}
	return categories, nil
}

// InsertMany creates products in a single batch.
func (r *GORMProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&products).Error; err != nil {
		return fmt.Errorf("failed to insert products: %w", err)
	}
	return nil
}

// Count returns the number of rows in the products table.
func (r *GORMProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

// Close closes the underlying connection pool.
func (r *GORMProductRepository) Close(context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle: %w", err)
	}
	return sqlDB.Close()
}

func likeClause(column string) string {
	return "LOWER(" + column + ") LIKE ? ESCAPE '\\'"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns s into a literal substring pattern, case-folded by fold.
func likePattern(s string, fold func(string) string) string {
	return "%" + likeEscaper.Replace(fold(s)) + "%"
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
