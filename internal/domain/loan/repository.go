package loan

import "context"

type Repository interface {
	// NextID allocates the next loan id. Inside a transaction the increment
	// is rolled back with it, so ids stay dense.
	NextID(ctx context.Context) (uint64, error)
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	// GetByIDForUpdate locks the row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	// Count is the number of ids allocated so far.
	Count(ctx context.Context) (uint64, error)
}
