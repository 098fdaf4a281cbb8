package services

import "catalog/internal/models"

// CreateProductRequest is the body of POST /products. Category existence
// is not checked here; the foreign key enforces it at commit time.
type CreateProductRequest struct {
	Name       string  `json:"name" validate:"required,min=5,max=250"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Stock      int     `json:"stock" validate:"gte=0"`
	CategoryID uint    `json:"categoryId" validate:"required"`
}

// UpdateProductRequest is the body of PUT /products/:id. The category
// reference is not updatable.
type UpdateProductRequest struct {
	Name  string  `json:"name" validate:"required,min=5,max=250"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Stock int     `json:"stock" validate:"gte=0"`
}

// UpdateProductStockRequest is the body of PATCH /products/stock.
type UpdateProductStockRequest struct {
	ProductID uint `json:"productId" validate:"required"`
	Stock     int  `json:"stock" validate:"gte=0"`
}

// CreateProductResponse carries the id of a newly created product.
type CreateProductResponse struct {
	ID uint `json:"id"`
}

// ProductResponse is the response shape of a single product.
type ProductResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func newProductFromCreate(req CreateProductRequest) *models.Product {
	return &models.Product{
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	}
}

func applyProductUpdate(product *models.Product, req UpdateProductRequest) {
	product.Name = req.Name
	product.Price = req.Price
	product.Stock = req.Stock
}

func toProductResponse(product models.Product) ProductResponse {
	return ProductResponse{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
		Stock: product.Stock,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}
	return responses
}
