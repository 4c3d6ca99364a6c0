package loan

import (
	"time"

	"creditledger/pkg/wei"

	"github.com/ethereum/go-ethereum/common"
)

type State string

const (
	StateRequested State = "requested"
	StateFunded    State = "funded"
	StateRepaid    State = "repaid"
	StateCancelled State = "cancelled"
)

// Loan is one borrower request and everything that happened to it.
// Lender is nil until the loan is funded; Active=false is terminal.
type Loan struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement:false;column:id"`
	Borrower        common.Address  `gorm:"column:borrower;type:bytes;size:20;not null;index:idx_loans_borrower"`
	Lender          *common.Address `gorm:"column:lender;type:bytes;size:20;index:idx_loans_lender"`
	Principal       wei.Amount      `gorm:"column:principal;type:string;size:78;not null"`
	DurationUnits   uint64          `gorm:"column:duration_units;not null"`
	InterestRateBps uint64          `gorm:"column:interest_rate_bps;not null"`
	FundedAt        *time.Time      `gorm:"column:funded_at"`
	DueAt           *time.Time      `gorm:"column:due_at"`
	Repaid          bool            `gorm:"column:repaid;not null"`
	Active          bool            `gorm:"column:active;not null"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Loan) TableName() string { return "loans" }

func (l *Loan) Funded() bool { return l.Lender != nil }

// State derives the lifecycle state from the stored flags.
func (l *Loan) State() State {
	switch {
	case l.Repaid:
		return StateRepaid
	case !l.Active:
		return StateCancelled
	case l.Funded():
		return StateFunded
	default:
		return StateRequested
	}
}

// Interest is floor(principal * rate / 10000).
func (l *Loan) Interest() (wei.Amount, error) {
	return Interest(l.Principal, l.InterestRateBps)
}

// RepaymentAmount is principal plus Interest.
func (l *Loan) RepaymentAmount() (wei.Amount, error) {
	interest, err := l.Interest()
	if err != nil {
		return wei.Amount{}, err
	}
	return l.Principal.Add(interest)
}
