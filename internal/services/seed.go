package services

import (
	"context"
	"fmt"
	"time"

	"akbstore/internal/models"

	"go.uber.org/zap"
)

// Seed inserts the default catalog when the store holds no products at all.
// Any existing record, even one unrelated to the catalog, turns Seed into a
// no-op; a partially seeded store is not topped up. It returns the number of
// inserted products.
func (s *ProductService) Seed(ctx context.Context) (int, error) {
	existing, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if existing > 0 {
		s.logger.Info("Catalog already seeded", zap.Int64("existing", existing))
		return 0, nil
	}

	products := models.DefaultCatalog(time.Now().UTC())
	for i := range products {
		if err := s.validateProduct(&products[i]); err != nil {
			return 0, err
		}
	}
	if err := s.repo.InsertMany(ctx, products); err != nil {
		return 0, fmt.Errorf("failed to seed products: %w", err)
	}

	s.metrics.AddSeedInserted(len(products))
	s.logger.Info("Catalog seeded", zap.Int("inserted", len(products)))
	return len(products), nil
}

// EnsureSeeded runs Seed and logs a failure instead of returning it, so the
// service keeps serving whatever the store already holds.
func (s *ProductService) EnsureSeeded(ctx context.Context) {
	if _, err := s.Seed(ctx); err != nil {
		s.metrics.IncSeedFailure()
		s.logger.Error("Catalog seeding failed", zap.Error(err))
	}
}
