package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	*GenericRepository[models.Category]
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		GenericRepository: NewGenericRepository[models.Category](db),
		db:                db,
	}
}

// NameExists reports whether a category with the exact given name exists.
func (r *GORMCategoryRepository) NameExists(name string) (bool, error) {
	return r.Exists("name = ?", name)
}

// NameExistsExcluding reports whether a category other than id carries the
// exact given name.
func (r *GORMCategoryRepository) NameExistsExcluding(name string, id uint) (bool, error) {
	return r.Exists("name = ? AND id <> ?", name, id)
}

// GetWithProducts returns one category with its full product list, or
// (nil, nil) when the category does not exist.
func (r *GORMCategoryRepository) GetWithProducts(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.Preload("Products").First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %d with products: %w", id, err)
	}
	return &category, nil
}

// GetAllWithProducts returns every category with its product list.
func (r *GORMCategoryRepository) GetAllWithProducts() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Preload("Products").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories with products: %w", err)
	}
	return categories, nil
}
