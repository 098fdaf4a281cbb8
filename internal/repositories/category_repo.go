package repositories

import (
	"catalog/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	NameExists(name string) (bool, error)
	NameExistsExcluding(name string, id uint) (bool, error)
	GetWithProducts(id uint) (*models.Category, error)
	GetAllWithProducts() ([]models.Category, error)
	Add(category *models.Category) Mutation
	Update(category *models.Category) Mutation
	Delete(category *models.Category) Mutation
}
