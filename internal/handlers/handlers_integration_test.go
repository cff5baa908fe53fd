package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"akbstore/internal/handlers"
	"akbstore/internal/models"
	"akbstore/internal/repositories"
	"akbstore/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp sets up a Fiber app over repo with the catalog routes mounted
// under /api.
func setupApp(repo repositories.ProductRepository) *fiber.App {
	productService := services.NewProductService(repo)
	productService.EnsureSeeded(context.Background())

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/health", handlers.HandleHealth)
	handlers.NewProductHandler(productService, nil).RegisterRoutes(api)
	handlers.NewCartHandler(productService, nil).RegisterRoutes(api)
	return app
}

// setupSQLiteApp seeds a file-backed SQLite store and returns the app and
// the store.
func setupSQLiteApp(t *testing.T) (*fiber.App, repositories.ProductRepository) {
	t.Helper()
	repo, err := repositories.OpenGORMProductRepository(
		sqlite.Open(filepath.Join(t.TempDir(), "akb_store.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close(context.Background()) })
	return setupApp(repo), repo
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case string:
			raw = []byte(b)
		default:
			var err error
			raw, err = json.Marshal(b)
			require.NoError(t, err)
		}
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	resp, err := app.Test(req, -1) // -1 for no timeout
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	app := setupApp(repositories.NewMemoryProductRepository())

	resp := doRequest(t, app, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, handlers.HealthMessage, body["message"])
}

func TestListProducts(t *testing.T) {
	app, repo := setupSQLiteApp(t)

	inactive := models.Product{
		ID: "akb-901", Name: "Discontinued Hood Badge", Price: 5, Stock: 1,
		Category: "Hood Badges", Image: "/images/r0901.png", SKU: "AKB-901-WB", Status: models.StatusInactive,
		Tags: []string{"Wolfsburg"},
	}
	models.ApplyDefaults(&inactive, time.Now())
	require.NoError(t, repo.InsertMany(context.Background(), []models.Product{inactive}))

	t.Run("all active products", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/products", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		products := decode[[]models.Product](t, resp)
		assert.Len(t, products, 20)
	})

	t.Run("category filter", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/products?category=Hood", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		products := decode[[]models.Product](t, resp)
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.Contains(t, p.Category, "Hood")
			assert.Equal(t, models.StatusActive, p.Status)
			assert.NotEqual(t, "akb-901", p.ID)
		}
	})

	t.Run("search filter", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/products?search=Wolfsburg", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		products := decode[[]models.Product](t, resp)
		ids := make([]string, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		for _, id := range []string{"akb-002", "akb-004", "akb-005", "akb-010", "akb-011"} {
			assert.Contains(t, ids, id)
		}
		assert.NotContains(t, ids, "akb-901")
	})

	t.Run("limit", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/products?limit=3", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decode[[]models.Product](t, resp), 3)
	})

	t.Run("zero limit uses the default", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/products?limit=0", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decode[[]models.Product](t, resp), 20)
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/products?limit=ten", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetProductByID(t *testing.T) {
	app, _ := setupSQLiteApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/products/akb-001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	product := decode[models.Product](t, resp)
	assert.Equal(t, "akb-001", product.ID)
	assert.Equal(t, "German Eagle (Federal Court Eagle)", product.Name)
	assert.Equal(t, 39.99, product.Price)
	assert.Equal(t, -1, product.Stock)
	assert.Equal(t, "AKB-001-GE-90", product.SKU)
	assert.False(t, product.CreatedAt.IsZero())

	resp = doRequest(t, app, http.MethodGet, "/api/products/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", decode[map[string]string](t, resp)["detail"])
}

func TestGetProductByID_CorruptRecord(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	app := setupApp(repo)

	corrupt := models.Product{ID: "akb-666", Name: "Broken", Category: "Hood Badges", Image: "/x.png", SKU: "X", Status: "archived"}
	require.NoError(t, repo.InsertMany(context.Background(), []models.Product{corrupt}))

	resp := doRequest(t, app, http.MethodGet, "/api/products/akb-666", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Error fetching product", decode[map[string]string](t, resp)["detail"])
}

func TestGetCategories(t *testing.T) {
	app, _ := setupSQLiteApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string][]string](t, resp)
	assert.ElementsMatch(t, []string{"Hood Badges", "Shift Knobs", "Hood Crests", "Horn Grills"}, body["categories"])
}

func TestAddToCart(t *testing.T) {
	app, _ := setupSQLiteApp(t)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantDetail string
	}{
		{name: "insufficient stock", body: map[string]any{"product_id": "akb-004", "quantity": 10}, wantStatus: http.StatusBadRequest, wantDetail: "Insufficient stock"},
		{name: "exact stock", body: map[string]any{"product_id": "akb-004", "quantity": 5}, wantStatus: http.StatusOK},
		{name: "unlimited stock", body: map[string]any{"product_id": "akb-001", "quantity": 500}, wantStatus: http.StatusOK},
		{name: "unknown product", body: map[string]any{"product_id": "nonexistent", "quantity": 1}, wantStatus: http.StatusNotFound, wantDetail: "Product not found"},
		{name: "empty product id", body: map[string]any{"product_id": "", "quantity": 1}, wantStatus: http.StatusNotFound, wantDetail: "Product not found"},
		{name: "missing product id", body: map[string]any{"quantity": 1}, wantStatus: http.StatusNotFound, wantDetail: "Product not found"},
		{name: "missing quantity", body: map[string]any{"product_id": "akb-004"}, wantStatus: http.StatusBadRequest, wantDetail: "Validation failed"},
		{name: "malformed body", body: `{"product_id":`, wantStatus: http.StatusBadRequest, wantDetail: "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodPost, "/api/cart/add", tt.body)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decode[map[string]any](t, resp)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, body["detail"])
				return
			}
			assert.Equal(t, services.CartAddedMessage, body["message"])
			assert.NotEmpty(t, body["product"])
			assert.Equal(t, tt.body.(map[string]any)["quantity"], int(body["quantity"].(float64)))
		})
	}
}

func TestAddToCart_Confirmation(t *testing.T) {
	app := setupApp(repositories.NewMemoryProductRepository())

	resp := doRequest(t, app, http.MethodPost, "/api/cart/add", map[string]any{"product_id": "akb-006", "quantity": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	confirmation := decode[models.CartConfirmation](t, resp)
	assert.Equal(t, models.CartConfirmation{
		Message:  "Item added to cart",
		Product:  "Eagle Horn Grill",
		Quantity: 2,
	}, confirmation)
}

// failingRepository fails every call, standing in for an unreachable store.
type failingRepository struct{}

var errStoreDown = errors.New("store unavailable")

func (failingRepository) Find(context.Context, repositories.ProductFilter) ([]models.Product, error) {
	return nil, errStoreDown
}
func (failingRepository) GetByID(context.Context, string) (*models.Product, error) {
	return nil, errStoreDown
}
func (failingRepository) DistinctActiveCategories(context.Context) ([]string, error) {
	return nil, errStoreDown
}
func (failingRepository) InsertMany(context.Context, []models.Product) error { return errStoreDown }
func (failingRepository) Count(context.Context) (int64, error)             { return 0, errStoreDown }
func (failingRepository) Close(context.Context) error                      { return nil }

func TestStoreErrors(t *testing.T) {
	// Seeding fails too, and the app still comes up.
	app := setupApp(failingRepository{})

	tests := []struct {
		method, target string
		body           any
		wantDetail     string
	}{
		{method: http.MethodGet, target: "/api/products", wantDetail: "Error fetching products"},
		{method: http.MethodGet, target: "/api/products/akb-001", wantDetail: "Error fetching product"},
		{method: http.MethodGet, target: "/api/categories", wantDetail: "Error fetching categories"},
		{method: http.MethodPost, target: "/api/cart/add", body: map[string]any{"product_id": "akb-001", "quantity": 1}, wantDetail: "Error adding to cart"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			resp := doRequest(t, app, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			body := decode[map[string]string](t, resp)
			assert.Equal(t, tt.wantDetail, body["detail"])
			assert.Contains(t, body["error"], "store unavailable")
		})
	}
}
