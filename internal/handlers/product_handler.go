package handlers

import (
	"errors"
	"strconv"

	"akbstore/internal/repositories"
	"akbstore/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service *services.ProductService
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger *zap.Logger) *ProductHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the product and category routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:id", h.HandleGetProductByID)
	router.Get("/categories", h.HandleGetCategories)
}

// HandleListProducts lists active products, optionally filtered by
// ?category= and ?search=, bounded by ?limit= (default 50).
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	limit := services.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"detail": "limit must be an integer",
			})
		}
		limit = n
	}

	products, err := h.service.ListProducts(c.UserContext(), services.ProductQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    limit,
	})
	if err != nil {
		h.logger.Error("Error listing products", zap.Error(err))
		return serverError(c, "Error fetching products", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its external id.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(c.UserContext(), productID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return productNotFound(c)
		}
		h.logger.Error("Error getting product", zap.String("product_id", productID), zap.Error(err))
		return serverError(c, "Error fetching product", err)
	}
	return c.JSON(product)
}

// HandleGetCategories returns the distinct categories of active products.
func (h *ProductHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories(c.UserContext())
	if err != nil {
		h.logger.Error("Error getting categories", zap.Error(err))
		return serverError(c, "Error fetching categories", err)
	}
	return c.JSON(fiber.Map{
		"categories": categories,
	})
}

func productNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"detail": "Product not found",
	})
}

func serverError(c *fiber.Ctx, detail string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": detail,
		"error":  err.Error(),
	})
}
