package repositories

import (
	"sort"
	"sync"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	mu       sync.RWMutex
	products map[uint]models.Product
	nextID   uint
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products in id order.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedByID(), nil
}

// GetByID returns a product by its ID, or (nil, nil) when absent.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// NameExists reports whether any product carries the exact given name.
func (r *MockProductRepository) NameExists(name string) (bool, error) {
	return r.NameExistsExcluding(name, 0)
}

// NameExistsExcluding reports whether a product other than id carries the
// exact given name.
func (r *MockProductRepository) NameExistsExcluding(name string, id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Name == name && p.ID != id {
			return true, nil
		}
	}
	return false, nil
}

// GetPaged returns one 1-based page of products in id order.
func (r *MockProductRepository) GetPaged(pageNumber, pageSize int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sortedByID()
	offset := (pageNumber - 1) * pageSize
	if offset < 0 || offset >= len(all) {
		return []models.Product{}, nil
	}
	end := offset + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// GetTopPriceProducts returns the count highest-priced products in
// descending price order.
func (r *MockProductRepository) GetTopPriceProducts(count int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sortedByID()
	sort.SliceStable(all, func(i, j int) bool { return all[i].Price > all[j].Price })
	if count < 0 {
		count = 0
	}
	if count < len(all) {
		all = all[:count]
	}
	return all, nil
}

// Add stages an insert; the product ID is assigned when the mutation runs.
func (r *MockProductRepository) Add(product *models.Product) Mutation {
	return func(_ *gorm.DB) (int64, error) {
		r.mu.Lock()
		defer r.mu.Unlock()

		if product.ID == 0 {
			product.ID = r.nextID
		}
		if product.ID >= r.nextID {
			r.nextID = product.ID + 1
		}
		r.products[product.ID] = *product
		return 1, nil
	}
}

// Update stages a full-row replace of the given product.
func (r *MockProductRepository) Update(product *models.Product) Mutation {
	return func(_ *gorm.DB) (int64, error) {
		r.mu.Lock()
		defer r.mu.Unlock()

		if _, ok := r.products[product.ID]; !ok {
			return 0, nil
		}
		r.products[product.ID] = *product
		return 1, nil
	}
}

// Delete stages a removal of the given product.
func (r *MockProductRepository) Delete(product *models.Product) Mutation {
	return func(_ *gorm.DB) (int64, error) {
		r.mu.Lock()
		defer r.mu.Unlock()

		if _, ok := r.products[product.ID]; !ok {
			return 0, nil
		}
		delete(r.products, product.ID)
		return 1, nil
	}
}

func (r *MockProductRepository) sortedByID() []models.Product {
	all := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}
