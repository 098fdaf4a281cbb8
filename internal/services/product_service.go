package services

import (
	"fmt"
	"net/http"

	"catalog/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	uow    repositories.UnitOfWork
	alerts CriticalAlerter
}

// NewProductService creates a new ProductService. alerts may be nil when
// no side channel is configured.
func NewProductService(repo repositories.ProductRepository, uow repositories.UnitOfWork, alerts CriticalAlerter) *ProductService {
	return &ProductService{
		repo:   repo,
		uow:    uow,
		alerts: alerts,
	}
}

// Create inserts a new product after checking that its name is not
// already taken. Name matching is a case-sensitive exact match.
func (s *ProductService) Create(req CreateProductRequest) ServiceResult[CreateProductResponse] {
	exists, err := s.repo.NameExists(req.Name)
	if err != nil {
		return Failure[CreateProductResponse](http.StatusInternalServerError, err.Error())
	}
	if exists {
		return Failure[CreateProductResponse](http.StatusConflict,
			fmt.Sprintf("Product with name '%s' already exists.", req.Name))
	}

	product := newProductFromCreate(req)
	if err := s.commit(s.repo.Add(product)); err != nil {
		return Failure[CreateProductResponse](http.StatusInternalServerError, err.Error())
	}

	return SuccessAsCreated(CreateProductResponse{ID: product.ID},
		fmt.Sprintf("/products/%d", product.ID))
}

// Update overwrites name, price and stock of an existing product,
// rejecting names already carried by a different product.
func (s *ProductService) Update(id uint, req UpdateProductRequest) ServiceResult[any] {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return Failure[any](http.StatusInternalServerError, err.Error())
	}
	if product == nil {
		return Failure[any](http.StatusNotFound, fmt.Sprintf("Product with ID %d not found.", id))
	}

	exists, err := s.repo.NameExistsExcluding(req.Name, product.ID)
	if err != nil {
		return Failure[any](http.StatusInternalServerError, err.Error())
	}
	if exists {
		return Failure[any](http.StatusConflict,
			fmt.Sprintf("Product with name '%s' already exists.", req.Name))
	}

	applyProductUpdate(product, req)
	if err := s.commit(s.repo.Update(product)); err != nil {
		return Failure[any](http.StatusInternalServerError, err.Error())
	}

	return NoContent()
}

// UpdateStock overwrites only the stock field of the product named by the
// request.
func (s *ProductService) UpdateStock(req UpdateProductStockRequest) ServiceResult[any] {
	product, err := s.repo.GetByID(req.ProductID)
	if err != nil {
		return Failure[any](http.StatusInternalServerError, err.Error())
	}
	if product == nil {
		return Failure[any](http.StatusNotFound,
			fmt.Sprintf("Product with ID %d not found.", req.ProductID))
	}

	product.Stock = req.Stock
	if err := s.commit(s.repo.Update(product)); err != nil {
		return Failure[any](http.StatusInternalServerError, err.Error())
	}

	return NoContent()
}

// Delete removes an existing product.
func (s *ProductService) Delete(id uint) ServiceResult[any] {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return Failure[any](http.StatusInternalServerError, err.Error())
	}
	if product == nil {
		return Failure[any](http.StatusNotFound, fmt.Sprintf("Product with ID %d not found.", id))
	}

	if err := s.commit(s.repo.Delete(product)); err != nil {
		return Failure[any](http.StatusInternalServerError, err.Error())
	}

	return NoContent()
}

// GetByID returns a single product.
func (s *ProductService) GetByID(id uint) ServiceResult[ProductResponse] {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return Failure[ProductResponse](http.StatusInternalServerError, err.Error())
	}
	if product == nil {
		return Failure[ProductResponse](http.StatusNotFound, fmt.Sprintf("Product with ID %d not found.", id))
	}
	return Success(toProductResponse(*product))
}

// GetAll returns every product, unpaged.
func (s *ProductService) GetAll() ServiceResult[[]ProductResponse] {
	products, err := s.repo.GetAll()
	if err != nil {
		return Failure[[]ProductResponse](http.StatusInternalServerError, err.Error())
	}
	return Success(toProductResponses(products))
}

// GetPagedAll returns one 1-based page of products. Page parameters are
// passed through unvalidated.
func (s *ProductService) GetPagedAll(pageNumber, pageSize int) ServiceResult[[]ProductResponse] {
	products, err := s.repo.GetPaged(pageNumber, pageSize)
	if err != nil {
		return Failure[[]ProductResponse](http.StatusInternalServerError, err.Error())
	}
	return Success(toProductResponses(products))
}

// GetTopPriceProducts returns the count highest-priced products in
// descending price order.
func (s *ProductService) GetTopPriceProducts(count int) ServiceResult[[]ProductResponse] {
	products, err := s.repo.GetTopPriceProducts(count)
	if err != nil {
		return Failure[[]ProductResponse](http.StatusInternalServerError, err.Error())
	}
	return Success(toProductResponses(products))
}

// commit applies staged mutations through the unit of work, raising a
// critical alert when the commit itself fails.
func (s *ProductService) commit(ops ...repositories.Mutation) error {
	if _, err := s.uow.SaveChanges(ops...); err != nil {
		if s.alerts != nil {
			s.alerts.NotifyCriticalError("product-service", err.Error())
		}
		return err
	}
	return nil
}
