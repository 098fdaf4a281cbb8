package services

import (
	"fmt"
	"net/http"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// CriticalAlerter publishes out-of-band alerts about fatal storage
// failures. Publishing never changes the HTTP response of the request
// that hit the failure.
type CriticalAlerter interface {
	NotifyCriticalError(source, message string)
}

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo   repositories.CategoryRepository
	uow    repositories.UnitOfWork
	alerts CriticalAlerter
}

// NewCategoryService creates a new CategoryService. alerts may be nil
// when no side channel is configured.
func NewCategoryService(repo repositories.CategoryRepository, uow repositories.UnitOfWork, alerts CriticalAlerter) *CategoryService {
	return &CategoryService{
		repo:   repo,
		uow:    uow,
		alerts: alerts,
	}
}

// Create inserts a new category after checking that its name is not
// already taken. Name matching is a case-sensitive exact match.
func (s *CategoryService) Create(req CreateCategoryRequest) ServiceResult[CreateCategoryResponse] {
	exists, err := s.repo.NameExists(req.Name)
	if err != nil {
		return Failure[CreateCategoryResponse](http.StatusInternalServerError, err.Error())
	}
	if exists {
		return Failure[CreateCategoryResponse](http.StatusConflict,
			fmt.Sprintf("Category with name '%s' already exists.", req.Name))
	}

	category := &models.Category{Name: req.Name}
	if err := s.commit(s.repo.Add(category)); err != nil {
		return Failure[CreateCategoryResponse](http.StatusInternalServerError, err.Error())
	}

	return SuccessAsCreated(CreateCategoryResponse{ID: category.ID},
		fmt.Sprintf("/categories/%d", category.ID))
}

// Update overwrites the name of an existing category, rejecting names
// already carried by a different category.
func (s *CategoryService) Update(id uint, req UpdateCategoryRequest) ServiceResult[any] {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return Failure[any](http.StatusInternalServerError, err.Error())
	}
	if category == nil {
		return Failure[any](http.StatusNotFound, fmt.Sprintf("Category with ID %d not found.", id))
	}

	exists, err := s.repo.NameExistsExcluding(req.Name, category.ID)
	if err != nil {
		return Failure[any](http.StatusInternalServerError, err.Error())
	}
	if exists {
		return Failure[any](http.StatusConflict,
			fmt.Sprintf("Category with name '%s' already exists.", req.Name))
	}

	category.Name = req.Name
	if err := s.commit(s.repo.Update(category)); err != nil {
		return Failure[any](http.StatusInternalServerError, err.Error())
	}

	return NoContent()
}

// Delete removes an existing category. A category whose products still
// reference it fails at commit time on the foreign key.
func (s *CategoryService) Delete(id uint) ServiceResult[any] {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return Failure[any](http.StatusInternalServerError, err.Error())
	}
	if category == nil {
		return Failure[any](http.StatusNotFound, fmt.Sprintf("Category with ID %d not found.", id))
	}

	if err := s.commit(s.repo.Delete(category)); err != nil {
		return Failure[any](http.StatusInternalServerError, err.Error())
	}

	return NoContent()
}

// GetByID returns a single category.
func (s *CategoryService) GetByID(id uint) ServiceResult[CategoryResponse] {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return Failure[CategoryResponse](http.StatusInternalServerError, err.Error())
	}
	if category == nil {
		return Failure[CategoryResponse](http.StatusNotFound, fmt.Sprintf("Category with ID %d not found.", id))
	}
	return Success(toCategoryResponse(*category))
}

// GetAll returns every category, unpaged.
func (s *CategoryService) GetAll() ServiceResult[[]CategoryResponse] {
	categories, err := s.repo.GetAll()
	if err != nil {
		return Failure[[]CategoryResponse](http.StatusInternalServerError, err.Error())
	}
	return Success(toCategoryResponses(categories))
}

// GetWithProducts returns one category together with its product list.
func (s *CategoryService) GetWithProducts(id uint) ServiceResult[CategoryWithProductsResponse] {
	category, err := s.repo.GetWithProducts(id)
	if err != nil {
		return Failure[CategoryWithProductsResponse](http.StatusInternalServerError, err.Error())
	}
	if category == nil {
		return Failure[CategoryWithProductsResponse](http.StatusNotFound,
			fmt.Sprintf("Category with ID %d not found.", id))
	}
	return Success(toCategoryWithProductsResponse(*category))
}

// GetAllWithProducts returns every category together with its product list.
func (s *CategoryService) GetAllWithProducts() ServiceResult[[]CategoryWithProductsResponse] {
	categories, err := s.repo.GetAllWithProducts()
	if err != nil {
		return Failure[[]CategoryWithProductsResponse](http.StatusInternalServerError, err.Error())
	}
	return Success(toCategoryWithProductsResponses(categories))
}

// commit applies staged mutations through the unit of work, raising a
// critical alert when the commit itself fails.
func (s *CategoryService) commit(ops ...repositories.Mutation) error {
	if _, err := s.uow.SaveChanges(ops...); err != nil {
		if s.alerts != nil {
			s.alerts.NotifyCriticalError("category-service", err.Error())
		}
		return err
	}
	return nil
}
