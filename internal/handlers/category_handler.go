package handlers

import (
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
// The static /products route must come before the :id routes.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetAll)
	categoryRoutes.Get("/products", h.HandleGetAllWithProducts)
	categoryRoutes.Get("/:id", h.HandleGetByID)
	categoryRoutes.Get("/:id/products", h.HandleGetWithProducts)
	categoryRoutes.Post("/", h.HandleCreate)
	categoryRoutes.Put("/:id", h.HandleUpdate)
	categoryRoutes.Delete("/:id", h.HandleDelete)
}

// HandleGetAll retrieves all categories.
func (h *CategoryHandler) HandleGetAll(c *fiber.Ctx) error {
	return writeResult(c, h.service.GetAll())
}

// HandleGetByID retrieves a single category by its ID.
func (h *CategoryHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Category id must be an integer.")
	}
	return writeResult(c, h.service.GetByID(uint(id)))
}

// HandleGetWithProducts retrieves one category with its product list.
func (h *CategoryHandler) HandleGetWithProducts(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Category id must be an integer.")
	}
	return writeResult(c, h.service.GetWithProducts(uint(id)))
}

// HandleGetAllWithProducts retrieves every category with its product list.
func (h *CategoryHandler) HandleGetAllWithProducts(c *fiber.Ctx) error {
	return writeResult(c, h.service.GetAllWithProducts())
}

// HandleCreate creates a new category.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req services.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.Warnf("Error parsing create category body: %v", err)
		return badRequest(c, "Invalid request body.")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessages(err)...)
	}
	return writeResult(c, h.service.Create(req))
}

// HandleUpdate updates the name of an existing category.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Category id must be an integer.")
	}

	var req services.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.Warnf("Error parsing update category body: %v", err)
		return badRequest(c, "Invalid request body.")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessages(err)...)
	}
	return writeResult(c, h.service.Update(uint(id), req))
}

// HandleDelete removes an existing category.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Category id must be an integer.")
	}
	return writeResult(c, h.service.Delete(uint(id)))
}
