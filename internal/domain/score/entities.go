package score

import (
	"math/bits"
	"time"

	"creditledger/internal/domain/loan"

	"github.com/ethereum/go-ethereum/common"
)

// Points awarded per lifecycle transition.
const (
	BorrowingPoints uint64 = 30
	LendingPoints   uint64 = 50
	RepaymentPoints uint64 = 100
)

// CreditScore is the reputation of one identity. Missing rows read as 0.
type CreditScore struct {
	Identity  common.Address `gorm:"primaryKey;autoIncrement:false;column:identity;type:bytes;size:20"`
	Score     uint64         `gorm:"column:score;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (CreditScore) TableName() string { return "credit_scores" }

// Add never wraps; overflow is an invariant violation.
func Add(current, points uint64) (uint64, error) {
	sum, carry := bits.Add64(current, points, 0)
	if carry != 0 {
		return 0, loan.ErrArithmeticOverflow
	}
	return sum, nil
}
