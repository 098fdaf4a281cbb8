package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"catalog/internal/handlers"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// setupApp builds a Fiber app over a fresh in-memory SQLite database with
// the full category and product pipeline wired.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:handlertest%d?mode=memory&cache=shared&_foreign_keys=on", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}))

	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	uow := repositories.NewGORMUnitOfWork(db)

	categoryService := services.NewCategoryService(categoryRepo, uow, nil)
	productService := services.NewProductService(productRepo, uow, nil)

	app := fiber.New()
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(app)
	handlers.NewProductHandler(productService).RegisterRoutes(app)

	return app
}

func TestMain(m *testing.M) {
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createCategory(t *testing.T, app *fiber.App, name string) uint {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/categories", fiber.Map{"name": name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[services.CreateCategoryResponse](t, resp)
	return created.ID
}

func TestCategoryEndpoints(t *testing.T) {
	app := setupApp(t)

	// Create returns 201 with a location reference and the new id.
	resp := doJSON(t, app, http.MethodPost, "/categories", fiber.Map{"name": "Electronics"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	location := resp.Header.Get("Location")
	created := decodeBody[services.CreateCategoryResponse](t, resp)
	assert.NotZero(t, created.ID)
	assert.Equal(t, fmt.Sprintf("/categories/%d", created.ID), location)

	// The new category is retrievable with identical fields.
	resp = doJSON(t, app, http.MethodGet, location, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := decodeBody[services.CategoryResponse](t, resp)
	assert.Equal(t, services.CategoryResponse{ID: created.ID, Name: "Electronics"}, fetched)

	// Duplicate names conflict.
	resp = doJSON(t, app, http.MethodPost, "/categories", fiber.Map{"name": "Electronics"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Structural validation short-circuits before the service.
	resp = doJSON(t, app, http.MethodPost, "/categories", fiber.Map{"name": "ab"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Update is 204 on success, 404 for unknown ids, 409 on collisions.
	booksID := createCategory(t, app, "Books")
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/categories/%d", booksID), fiber.Map{"name": "Novels"})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPut, "/categories/9999", fiber.Map{"name": "Novels"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/categories/%d", booksID), fiber.Map{"name": "Electronics"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// List contains both categories.
	resp = doJSON(t, app, http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]services.CategoryResponse](t, resp)
	assert.Len(t, list, 2)

	// Delete removes exactly the named category.
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/categories/%d", booksID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/categories/%d", booksID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/categories/%d", booksID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProductLifecycleScenario(t *testing.T) {
	app := setupApp(t)
	categoryID := createCategory(t, app, "Electronics")

	// POST /products → 201 with {id}.
	resp := doJSON(t, app, http.MethodPost, "/products", fiber.Map{
		"name": "Widget Alpha", "price": 9.99, "stock": 5, "categoryId": categoryID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[services.CreateProductResponse](t, resp)
	assert.NotZero(t, created.ID)

	// GET /products/{id} → 200 with identical fields.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := decodeBody[services.ProductResponse](t, resp)
	assert.Equal(t, services.ProductResponse{ID: created.ID, Name: "Widget Alpha", Price: 9.99, Stock: 5}, fetched)

	// PUT overwrites name, price and stock.
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/products/%d", created.ID), fiber.Map{
		"name": "Widget Alpha II", "price": 12.5, "stock": 7,
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// PATCH /products/stock changes only the stock field.
	resp = doJSON(t, app, http.MethodPatch, "/products/stock", fiber.Map{
		"productId": created.ID, "stock": 42,
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), nil)
	after := decodeBody[services.ProductResponse](t, resp)
	assert.Equal(t, services.ProductResponse{ID: created.ID, Name: "Widget Alpha II", Price: 12.5, Stock: 42}, after)

	// Category-with-products includes the product.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/categories/%d/products", categoryID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	withProducts := decodeBody[services.CategoryWithProductsResponse](t, resp)
	require.Len(t, withProducts.Products, 1)
	assert.Equal(t, "Widget Alpha II", withProducts.Products[0].Name)

	resp = doJSON(t, app, http.MethodGet, "/categories/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	allWithProducts := decodeBody[[]services.CategoryWithProductsResponse](t, resp)
	require.Len(t, allWithProducts, 1)
	assert.Len(t, allWithProducts[0].Products, 1)

	// DELETE then GET → 404.
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCategoryDeleteWithProductsIsStorageFailure(t *testing.T) {
	app := setupApp(t)
	categoryID := createCategory(t, app, "Electronics")

	resp := doJSON(t, app, http.MethodPost, "/products", fiber.Map{
		"name": "Widget Alpha", "price": 9.99, "stock": 5, "categoryId": categoryID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// The foreign key rejects the commit; the failure surfaces as a
	// storage error, not a 404 or 409.
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/categories/%d", categoryID), nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	payload := decodeBody[map[string][]string](t, resp)
	assert.NotEmpty(t, payload["errorMessages"])

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/categories/%d", categoryID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestProductValidationAndConflicts(t *testing.T) {
	app := setupApp(t)
	categoryID := createCategory(t, app, "Electronics")

	// Name below 5 characters, non-positive price, negative stock.
	for _, body := range []fiber.Map{
		{"name": "abc", "price": 9.99, "stock": 5, "categoryId": categoryID},
		{"name": "Widget Alpha", "price": 0, "stock": 5, "categoryId": categoryID},
		{"name": "Widget Alpha", "price": 9.99, "stock": -1, "categoryId": categoryID},
	} {
		resp := doJSON(t, app, http.MethodPost, "/products", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		payload := decodeBody[map[string][]string](t, resp)
		assert.NotEmpty(t, payload["errorMessages"])
	}

	resp := doJSON(t, app, http.MethodPost, "/products", fiber.Map{
		"name": "Widget Alpha", "price": 9.99, "stock": 5, "categoryId": categoryID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Duplicate product names conflict and insert nothing.
	resp = doJSON(t, app, http.MethodPost, "/products", fiber.Map{
		"name": "Widget Alpha", "price": 1.0, "stock": 1, "categoryId": categoryID,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/products", nil)
	list := decodeBody[[]services.ProductResponse](t, resp)
	assert.Len(t, list, 1)

	// Unknown ids on the stock patch are 404.
	resp = doJSON(t, app, http.MethodPatch, "/products/stock", fiber.Map{
		"productId": 9999, "stock": 3,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProductPagingEndpoint(t *testing.T) {
	app := setupApp(t)
	categoryID := createCategory(t, app, "Electronics")

	for i := 1; i <= 25; i++ {
		resp := doJSON(t, app, http.MethodPost, "/products", fiber.Map{
			"name":       fmt.Sprintf("Widget Number %02d", i),
			"price":      float64(i),
			"stock":      i,
			"categoryId": categoryID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/products", nil)
	all := decodeBody[[]services.ProductResponse](t, resp)
	require.Len(t, all, 25)

	resp = doJSON(t, app, http.MethodGet, "/products/2/10", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	page := decodeBody[[]services.ProductResponse](t, resp)
	require.Len(t, page, 10)
	assert.Equal(t, all[10:20], page)
}
