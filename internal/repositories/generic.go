package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Mutation is a staged write against the store. It stays inert until a
// UnitOfWork commits it and reports the number of rows it affected.
type Mutation func(tx *gorm.DB) (int64, error)

// GenericRepository provides untracked CRUD access for a single entity
// type. Reads run directly against the database; writes are returned as
// staged Mutations for the unit of work to commit.
type GenericRepository[T any] struct {
	db *gorm.DB
}

// NewGenericRepository creates a repository for entity type T.
func NewGenericRepository[T any](db *gorm.DB) *GenericRepository[T] {
	return &GenericRepository[T]{db: db}
}

// GetAll returns every row of T, unpaged.
func (r *GenericRepository[T]) GetAll() ([]T, error) {
	var entities []T
	if err := r.db.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to get all rows: %w", err)
	}
	return entities, nil
}

// Where returns the rows of T matching the given condition.
func (r *GenericRepository[T]) Where(query string, args ...any) ([]T, error) {
	var entities []T
	if err := r.db.Where(query, args...).Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	return entities, nil
}

// Exists reports whether any row of T matches the given condition.
func (r *GenericRepository[T]) Exists(query string, args ...any) (bool, error) {
	var count int64
	if err := r.db.Model(new(T)).Where(query, args...).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check row existence: %w", err)
	}
	return count > 0, nil
}

// GetByID returns the row with the given primary key, or (nil, nil) when
// no such row exists.
func (r *GenericRepository[T]) GetByID(id uint) (*T, error) {
	var entity T
	if err := r.db.First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get row by ID %d: %w", id, err)
	}
	return &entity, nil
}

// Add stages an insert of the given entity.
func (r *GenericRepository[T]) Add(entity *T) Mutation {
	return func(tx *gorm.DB) (int64, error) {
		res := tx.Create(entity)
		return res.RowsAffected, res.Error
	}
}

// Update stages a full-row replace of the given entity.
func (r *GenericRepository[T]) Update(entity *T) Mutation {
	return func(tx *gorm.DB) (int64, error) {
		res := tx.Save(entity)
		return res.RowsAffected, res.Error
	}
}

// Delete stages a hard delete of the given entity.
func (r *GenericRepository[T]) Delete(entity *T) Mutation {
	return func(tx *gorm.DB) (int64, error) {
		res := tx.Delete(entity)
		return res.RowsAffected, res.Error
	}
}
