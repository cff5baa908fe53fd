package handlers

import (
	"errors"
	"fmt"

	"akbstore/internal/models"
	"akbstore/internal/repositories"
	"akbstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CartHandler handles the stateless cart stock check.
type CartHandler struct {
	service  *services.ProductService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.ProductService, logger *zap.Logger) *CartHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the cart routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Post("/add", h.HandleAddToCart)
}

// AddToCartRequest is the body of POST /cart/add. Quantity is a pointer so
// that a missing field is told apart from an explicit zero. An empty
// ProductID is looked up like any other id and ends in a 404.
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity" validate:"required"`
}

// HandleAddToCart checks stock for a proposed cart addition.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid request body",
			"error":  err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		errorMessages := make(map[string]string)
		if errors.As(err, &validationErrors) {
			for _, e := range validationErrors {
				errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Validation failed",
			"errors": errorMessages,
		})
	}

	item := models.CartItem{ProductID: req.ProductID, Quantity: *req.Quantity}
	confirmation, err := h.service.CheckCartItem(c.UserContext(), item)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProductNotFound):
			return productNotFound(c)
		case errors.Is(err, services.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"detail": "Insufficient stock",
			})
		}
		h.logger.Error("Error adding to cart", zap.String("product_id", item.ProductID), zap.Error(err))
		return serverError(c, "Error adding to cart", err)
	}
	return c.JSON(confirmation)
}
