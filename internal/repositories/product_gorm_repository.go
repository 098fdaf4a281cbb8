package repositories

import (
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	*GenericRepository[models.Product]
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		GenericRepository: NewGenericRepository[models.Product](db),
		db:                db,
	}
}

// NameExists reports whether a product with the exact given name exists.
func (r *GORMProductRepository) NameExists(name string) (bool, error) {
	return r.Exists("name = ?", name)
}

// NameExistsExcluding reports whether a product other than id carries the
// exact given name.
func (r *GORMProductRepository) NameExistsExcluding(name string, id uint) (bool, error) {
	return r.Exists("name = ? AND id <> ?", name, id)
}

// GetPaged returns one page of products in id order. Page numbers are
// 1-based; values are passed through to the store unvalidated.
func (r *GORMProductRepository) GetPaged(pageNumber, pageSize int) ([]models.Product, error) {
	var products []models.Product
	offset := (pageNumber - 1) * pageSize
	if err := r.db.Order("id").Offset(offset).Limit(pageSize).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get product page %d/%d: %w", pageNumber, pageSize, err)
	}
	return products, nil
}

// GetTopPriceProducts returns the count highest-priced products in
// descending price order. Ties have no secondary ordering.
func (r *GORMProductRepository) GetTopPriceProducts(count int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("price DESC").Limit(count).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get top %d products by price: %w", count, err)
	}
	return products, nil
}
