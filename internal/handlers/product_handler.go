package handlers

import (
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetAll)
	productRoutes.Get("/:id", h.HandleGetByID)
	productRoutes.Get("/:pageNumber/:pageSize", h.HandleGetPagedAll)
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Patch("/stock", h.HandleUpdateStock)
	productRoutes.Delete("/:id", h.HandleDelete)
}

// HandleGetAll retrieves all products.
func (h *ProductHandler) HandleGetAll(c *fiber.Ctx) error {
	return writeResult(c, h.service.GetAll())
}

// HandleGetPagedAll retrieves one page of products. Page numbers are
// 1-based.
func (h *ProductHandler) HandleGetPagedAll(c *fiber.Ctx) error {
	pageNumber, err := c.ParamsInt("pageNumber")
	if err != nil {
		return badRequest(c, "Page number must be an integer.")
	}
	pageSize, err := c.ParamsInt("pageSize")
	if err != nil {
		return badRequest(c, "Page size must be an integer.")
	}
	return writeResult(c, h.service.GetPagedAll(pageNumber, pageSize))
}

// HandleGetByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Product id must be an integer.")
	}
	return writeResult(c, h.service.GetByID(uint(id)))
}

// HandleCreate creates a new product.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req services.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.Warnf("Error parsing create product body: %v", err)
		return badRequest(c, "Invalid request body.")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessages(err)...)
	}
	return writeResult(c, h.service.Create(req))
}

// HandleUpdate overwrites name, price and stock of an existing product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Product id must be an integer.")
	}

	var req services.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.Warnf("Error parsing update product body: %v", err)
		return badRequest(c, "Invalid request body.")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessages(err)...)
	}
	return writeResult(c, h.service.Update(uint(id), req))
}

// HandleUpdateStock overwrites only the stock of the product named in the
// request body.
func (h *ProductHandler) HandleUpdateStock(c *fiber.Ctx) error {
	var req services.UpdateProductStockRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.Warnf("Error parsing update stock body: %v", err)
		return badRequest(c, "Invalid request body.")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessages(err)...)
	}
	return writeResult(c, h.service.UpdateStock(req))
}

// HandleDelete removes an existing product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Product id must be an integer.")
	}
	return writeResult(c, h.service.Delete(uint(id)))
}
