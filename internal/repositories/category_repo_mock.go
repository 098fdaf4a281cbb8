package repositories

import (
	"sort"
	"sync"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
// Product lists for the with-products reads come from an optional linked
// MockProductRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories map[uint]models.Category
	nextID     uint
	products   *MockProductRepository
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
// products may be nil when the with-products reads are not needed.
func NewMockCategoryRepository(products *MockProductRepository) *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[uint]models.Category),
		nextID:     1,
		products:   products,
	}
}

// GetAll returns all categories in id order.
func (r *MockCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedByID(), nil
}

// GetByID returns a category by its ID, or (nil, nil) when absent.
func (r *MockCategoryRepository) GetByID(id uint) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

// NameExists reports whether any category carries the exact given name.
func (r *MockCategoryRepository) NameExists(name string) (bool, error) {
	return r.NameExistsExcluding(name, 0)
}

// NameExistsExcluding reports whether a category other than id carries the
// exact given name.
func (r *MockCategoryRepository) NameExistsExcluding(name string, id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Name == name && c.ID != id {
			return true, nil
		}
	}
	return false, nil
}

// GetWithProducts returns one category with its product list, or (nil, nil)
// when the category does not exist.
func (r *MockCategoryRepository) GetWithProducts(id uint) (*models.Category, error) {
	category, err := r.GetByID(id)
	if err != nil || category == nil {
		return category, err
	}
	category.Products, err = r.ownedProducts(id)
	return category, err
}

// GetAllWithProducts returns every category with its product list.
func (r *MockCategoryRepository) GetAllWithProducts() ([]models.Category, error) {
	r.mu.RLock()
	all := r.sortedByID()
	r.mu.RUnlock()

	for i := range all {
		products, err := r.ownedProducts(all[i].ID)
		if err != nil {
			return nil, err
		}
		all[i].Products = products
	}
	return all, nil
}

// Add stages an insert; the category ID is assigned when the mutation runs.
func (r *MockCategoryRepository) Add(category *models.Category) Mutation {
	return func(_ *gorm.DB) (int64, error) {
		r.mu.Lock()
		defer r.mu.Unlock()

		if category.ID == 0 {
			category.ID = r.nextID
		}
		if category.ID >= r.nextID {
			r.nextID = category.ID + 1
		}
		r.categories[category.ID] = *category
		return 1, nil
	}
}

// Update stages a full-row replace of the given category.
func (r *MockCategoryRepository) Update(category *models.Category) Mutation {
	return func(_ *gorm.DB) (int64, error) {
		r.mu.Lock()
		defer r.mu.Unlock()

		if _, ok := r.categories[category.ID]; !ok {
			return 0, nil
		}
		r.categories[category.ID] = *category
		return 1, nil
	}
}

// Delete stages a removal of the given category.
func (r *MockCategoryRepository) Delete(category *models.Category) Mutation {
	return func(_ *gorm.DB) (int64, error) {
		r.mu.Lock()
		defer r.mu.Unlock()

		if _, ok := r.categories[category.ID]; !ok {
			return 0, nil
		}
		delete(r.categories, category.ID)
		return 1, nil
	}
}

func (r *MockCategoryRepository) ownedProducts(categoryID uint) ([]models.Product, error) {
	if r.products == nil {
		return nil, nil
	}
	all, err := r.products.GetAll()
	if err != nil {
		return nil, err
	}
	owned := make([]models.Product, 0)
	for _, p := range all {
		if p.CategoryID == categoryID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (r *MockCategoryRepository) sortedByID() []models.Category {
	all := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}
