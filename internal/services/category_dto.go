package services

import "catalog/internal/models"

// CreateCategoryRequest is the body of POST /categories.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=3,max=150"`
}

// UpdateCategoryRequest is the body of PUT /categories/:id.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=3,max=150"`
}

// CreateCategoryResponse carries the id of a newly created category.
type CreateCategoryResponse struct {
	ID uint `json:"id"`
}

// CategoryResponse is the response shape of a single category.
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CategoryWithProductsResponse is a category together with its full
// product list.
type CategoryWithProductsResponse struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Products []ProductResponse `json:"products"`
}

func toCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}

func toCategoryResponses(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, toCategoryResponse(c))
	}
	return responses
}

func toCategoryWithProductsResponse(category models.Category) CategoryWithProductsResponse {
	return CategoryWithProductsResponse{
		ID:       category.ID,
		Name:     category.Name,
		Products: toProductResponses(category.Products),
	}
}

func toCategoryWithProductsResponses(categories []models.Category) []CategoryWithProductsResponse {
	responses := make([]CategoryWithProductsResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, toCategoryWithProductsResponse(c))
	}
	return responses
}
