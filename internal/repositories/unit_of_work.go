package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// UnitOfWork commits staged mutations as one atomic transaction.
type UnitOfWork interface {
	// SaveChanges applies the given mutations in order inside a single
	// transaction and returns the total number of affected rows. On any
	// failure nothing is committed.
	SaveChanges(ops ...Mutation) (int64, error)
}

// GORMUnitOfWork is a GORM implementation of UnitOfWork.
type GORMUnitOfWork struct {
	db *gorm.DB
}

// NewGORMUnitOfWork creates a new instance of GORMUnitOfWork.
func NewGORMUnitOfWork(db *gorm.DB) *GORMUnitOfWork {
	return &GORMUnitOfWork{db: db}
}

// SaveChanges runs every staged mutation inside one database transaction.
func (u *GORMUnitOfWork) SaveChanges(ops ...Mutation) (int64, error) {
	var affected int64
	err := u.db.Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			n, err := op(tx)
			if err != nil {
				return err
			}
			affected += n
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to commit unit of work: %w", err)
	}
	return affected, nil
}
