package repositories

// MockUnitOfWork commits staged mutations by running them directly, with
// no database transaction. It pairs with the in-memory repositories.
type MockUnitOfWork struct{}

// NewMockUnitOfWork creates a new instance of MockUnitOfWork.
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{}
}

// SaveChanges runs every staged mutation in order and sums the affected
// row counts.
func (u *MockUnitOfWork) SaveChanges(ops ...Mutation) (int64, error) {
	var affected int64
	for _, op := range ops {
		n, err := op(nil)
		if err != nil {
			return 0, err
		}
		affected += n
	}
	return affected, nil
}
