package repositories

import (
	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	NameExists(name string) (bool, error)
	NameExistsExcluding(name string, id uint) (bool, error)
	GetPaged(pageNumber, pageSize int) ([]models.Product, error)
	GetTopPriceProducts(count int) ([]models.Product, error)
	Add(product *models.Product) Mutation
	Update(product *models.Product) Mutation
	Delete(product *models.Product) Mutation
}
