package ledger

import (
	"time"

	"creditledger/internal/domain/loan"
	"creditledger/pkg/wei"

	"github.com/ethereum/go-ethereum/common"
)

type RequestLoanInput struct {
	Amount          wei.Amount
	DurationUnits   uint64
	InterestRateBps uint64
}

// LoanDTO is the full loan tuple plus derived amounts.
type LoanDTO struct {
	ID              uint64          `json:"id"`
	Borrower        common.Address  `json:"borrower"`
	Lender          *common.Address `json:"lender"`
	Principal       wei.Amount      `json:"principal"`
	DurationUnits   uint64          `json:"duration_units"`
	InterestRateBps uint64          `json:"interest_rate_bps"`
	Interest        wei.Amount      `json:"interest"`
	RepaymentAmount wei.Amount      `json:"repayment_amount"`
	FundedAt        *time.Time      `json:"funded_at,omitempty"`
	DueAt           *time.Time      `json:"due_at,omitempty"`
	Repaid          bool            `json:"repaid"`
	Active          bool            `json:"active"`
	State           string          `json:"state"`
	CreatedAt       time.Time       `json:"created_at"`
}

func toDTO(l *loan.Loan) (*LoanDTO, error) {
	interest, err := l.Interest()
	if err != nil {
		return nil, err
	}
	repayment, err := l.Principal.Add(interest)
	if err != nil {
		return nil, err
	}
	return &LoanDTO{
		ID:              l.ID,
		Borrower:        l.Borrower,
		Lender:          l.Lender,
		Principal:       l.Principal,
		DurationUnits:   l.DurationUnits,
		InterestRateBps: l.InterestRateBps,
		Interest:        interest,
		RepaymentAmount: repayment,
		FundedAt:        l.FundedAt,
		DueAt:           l.DueAt,
		Repaid:          l.Repaid,
		Active:          l.Active,
		State:           string(l.State()),
		CreatedAt:       l.CreatedAt,
	}, nil
}
