package services

import (
	"context"
	"fmt"

	"akbstore/internal/metrics"
	"akbstore/internal/models"
	"akbstore/internal/repositories"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// DefaultListLimit bounds a product listing when the caller gives no limit.
const DefaultListLimit = 50

// CartEventPublisher receives an event for every accepted cart addition.
type CartEventPublisher interface {
	PublishCartItemAdded(ctx context.Context, event models.CartItemAddedEvent) error
}

// ProductQuery carries the listing parameters accepted by the API.
type ProductQuery struct {
	Category string
	Search   string
	Limit    int
}

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo      repositories.ProductRepository
	validate  *validator.Validate
	publisher CartEventPublisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// Option configures a ProductService.
type Option func(*ProductService)

// WithLogger sets the service logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *ProductService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPublisher enables cart event publication.
func WithPublisher(p CartEventPublisher) Option {
	return func(s *ProductService) {
		s.publisher = p
	}
}

// WithMetrics enables metric recording.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *ProductService) {
		s.metrics = m
	}
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, opts ...Option) *ProductService {
	s := &ProductService{
		repo:     repo,
		validate: validator.New(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListProducts returns the active products matching q, at most q.Limit of
// them. A non-positive limit falls back to DefaultListLimit.
func (s *ProductService) ListProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	products, err := s.repo.Find(ctx, repositories.ProductFilter{
		Category:   q.Category,
		Search:     q.Search,
		ActiveOnly: true,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching products: %w", err)
	}
	for i := range products {
		if err := s.validateProduct(&products[i]); err != nil {
			return nil, err
		}
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID. Inactive products are
// returned too; only listings filter on status.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching product: %w", err)
	}
	if err := s.validateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Categories returns the distinct categories of active products.
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.DistinctActiveCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}
	return categories, nil
}

func (s *ProductService) validateProduct(p *models.Product) error {
	if err := s.validate.Struct(p); err != nil {
		return &ValidationError{ProductID: p.ID, Err: err}
	}
	return nil
}
