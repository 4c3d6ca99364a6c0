package mysql

import (
	"context"
	"errors"
	"math"

	loanDomain "creditledger/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const loanCounterName = "loan"

// ledgerCounter holds monotonically increasing id sequences.
type ledgerCounter struct {
	Name  string `gorm:"primaryKey;column:name;type:string;size:32"`
	Value uint64 `gorm:"column:value;not null"`
}

func (ledgerCounter) TableName() string { return "ledger_counters" }

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *LoanRepository) Tx(ctx context.Context, fn func(repo loanDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LoanRepository{db: tx})
	})
}

func (r *LoanRepository) NextID(ctx context.Context) (uint64, error) {
	db := r.db.WithContext(ctx)
	var c ledgerCounter
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", loanCounterName).
		First(&c).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c = ledgerCounter{Name: loanCounterName}
		if err := db.Create(&c).Error; err != nil {
			return 0, err
		}
	case err != nil:
		return 0, err
	}
	if c.Value == math.MaxUint64 {
		return 0, loanDomain.ErrArithmeticOverflow
	}
	next := c.Value + 1
	if err := db.Model(&ledgerCounter{}).Where("name = ?", loanCounterName).Update("value", next).Error; err != nil {
		return 0, err
	}
	return next, nil
}

func (r *LoanRepository) Count(ctx context.Context) (uint64, error) {
	var c ledgerCounter
	err := r.db.WithContext(ctx).Where("name = ?", loanCounterName).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return c.Value, err
}

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

// GetByIDForUpdate takes a row lock (no-op on sqlite, which serializes writers anyway).
func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return loanDomain.ErrNotFound
	}
	return err
}
