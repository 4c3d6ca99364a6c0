package ledger

import (
	"context"

	"creditledger/internal/domain/index"
	"creditledger/internal/domain/transfer"
	"creditledger/pkg/wei"

	"github.com/ethereum/go-ethereum/common"
)

// Queries read committed state only and take no lock.

func (u *Usecase) GetLoanDetails(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	l, err := u.reads.Loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l)
}

func (u *Usecase) CalculateLoanInterest(ctx context.Context, loanID uint64) (wei.Amount, error) {
	l, err := u.reads.Loans.GetByID(ctx, loanID)
	if err != nil {
		return wei.Amount{}, err
	}
	return l.Interest()
}

func (u *Usecase) CalculateRepaymentAmount(ctx context.Context, loanID uint64) (wei.Amount, error) {
	l, err := u.reads.Loans.GetByID(ctx, loanID)
	if err != nil {
		return wei.Amount{}, err
	}
	return l.RepaymentAmount()
}

func (u *Usecase) GetActiveLoanRequests(ctx context.Context) ([]uint64, error) {
	return u.reads.Indices.ListActive(ctx)
}

func (u *Usecase) GetUserLoans(ctx context.Context, identity common.Address) ([]uint64, error) {
	return u.reads.Indices.List(ctx, identity, index.RoleBorrower)
}

func (u *Usecase) GetUserLendings(ctx context.Context, identity common.Address) ([]uint64, error) {
	return u.reads.Indices.List(ctx, identity, index.RoleLender)
}

func (u *Usecase) CreditScore(ctx context.Context, identity common.Address) (uint64, error) {
	return u.reads.Scores.Get(ctx, identity)
}

func (u *Usecase) LoanCount(ctx context.Context) (uint64, error) {
	return u.reads.Loans.Count(ctx)
}

// GetLoanTransfers returns the journaled value movements of a loan, oldest first.
func (u *Usecase) GetLoanTransfers(ctx context.Context, loanID uint64) ([]transfer.Transfer, error) {
	if _, err := u.reads.Loans.GetByID(ctx, loanID); err != nil {
		return nil, err
	}
	return u.reads.Transfers.ListByLoanID(ctx, loanID)
}
