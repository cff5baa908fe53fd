package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"akbstore/internal/metrics"
	"akbstore/internal/models"
	"akbstore/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartAddedMessage is the confirmation text for an accepted cart addition.
const CartAddedMessage = "Item added to cart"

// CheckCartItem verifies that item.Quantity units of the product are
// available. Nothing is reserved or decremented. Quantity is not range
// checked, so zero or negative quantities always pass.
func (s *ProductService) CheckCartItem(ctx context.Context, item models.CartItem) (*models.CartConfirmation, error) {
	product, err := s.repo.GetByID(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			s.metrics.IncCartCheck(metrics.CartNotFound)
		} else {
			s.metrics.IncCartCheck(metrics.CartError)
		}
		return nil, fmt.Errorf("error adding to cart: %w", err)
	}

	if !product.HasStockFor(item.Quantity) {
		s.metrics.IncCartCheck(metrics.CartInsufficientStock)
		return nil, fmt.Errorf("product %s (requested: %d, available: %d): %w",
			product.ID, item.Quantity, product.Stock, ErrInsufficientStock)
	}

	s.metrics.IncCartCheck(metrics.CartAccepted)
	s.publishCartItemAdded(ctx, product, item.Quantity)

	return &models.CartConfirmation{
		Message:  CartAddedMessage,
		Product:  product.Name,
		Quantity: item.Quantity,
	}, nil
}

func (s *ProductService) publishCartItemAdded(ctx context.Context, product *models.Product, quantity int) {
	if s.publisher == nil {
		return
	}
	event := models.CartItemAddedEvent{
		EventID:    uuid.New().String(),
		ProductID:  product.ID,
		SKU:        product.SKU,
		Quantity:   quantity,
		UnitPrice:  product.Price,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishCartItemAdded(ctx, event); err != nil {
		s.logger.Warn("Failed to publish cart event",
			zap.String("product_id", product.ID),
			zap.String("event_id", event.EventID),
			zap.Error(err))
	}
}
