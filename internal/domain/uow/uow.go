package uow

import (
	"context"

	"creditledger/internal/domain/index"
	"creditledger/internal/domain/loan"
	"creditledger/internal/domain/score"
	"creditledger/internal/domain/transfer"
)

// Repos are bound to one transaction when handed out by a UnitOfWork.
type Repos struct {
	Loans     loan.Repository
	Indices   index.Repository
	Scores    score.Repository
	Transfers transfer.Repository
}

type UnitOfWork interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in.
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
}
