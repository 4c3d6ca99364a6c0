package ledger

import (
	"context"
	"errors"
	"testing"

	"creditledger/internal/domain/index"
	"creditledger/internal/domain/loan"
	"creditledger/internal/domain/uow"
	"creditledger/internal/testutil/eventmock"
	"creditledger/internal/testutil/indexmock"
	"creditledger/internal/testutil/loanmock"
	"creditledger/internal/testutil/scoremock"
	"creditledger/internal/testutil/transfermock"
	"creditledger/internal/testutil/uowmock"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoan_StorageErrorPropagates(t *testing.T) {
	boom := errors.New("index write failed")
	created := false
	repos := uow.Repos{
		Loans: &loanmock.Repo{
			NextIDFn: func(context.Context) (uint64, error) { return 1, nil },
			CreateFn: func(context.Context, *loan.Loan) error { created = true; return nil },
		},
		Indices: &indexmock.Repo{
			AppendFn: func(context.Context, common.Address, index.Role, uint64) error { return boom },
		},
		Scores: &scoremock.Repo{},
	}
	events := &eventmock.Recorder{}
	uc := NewUsecase(uowmock.Passthrough(repos), repos, WithPublisher(events))

	_, err := uc.RequestLoan(context.Background(), alice, standardTerms())
	require.ErrorIs(t, err, boom)
	assert.True(t, created)
	assert.Empty(t, events.Events())
}

func TestRequestLoan_ScoreOverflowAborts(t *testing.T) {
	repos := uow.Repos{
		Loans:   &loanmock.Repo{NextIDFn: func(context.Context) (uint64, error) { return 1, nil }},
		Indices: &indexmock.Repo{},
		Scores: &scoremock.Repo{
			AwardFn: func(context.Context, common.Address, uint64) (uint64, error) {
				return 0, loan.ErrArithmeticOverflow
			},
		},
	}
	uc := NewUsecase(uowmock.Passthrough(repos), repos)

	_, err := uc.RequestLoan(context.Background(), alice, standardTerms())
	assert.ErrorIs(t, err, loan.ErrArithmeticOverflow)
}

func TestFundLoan_UsesLockedRow(t *testing.T) {
	var saved *loan.Loan
	transfers := &transfermock.Repo{}
	repos := uow.Repos{
		Loans: &loanmock.Repo{
			GetByIDForUpdateFn: func(_ context.Context, id uint64) (*loan.Loan, error) {
				return &loan.Loan{ID: id, Borrower: alice, Principal: standardTerms().Amount, DurationUnits: 30, InterestRateBps: 500, Active: true}, nil
			},
			SaveFn: func(_ context.Context, l *loan.Loan) error { saved = l; return nil },
		},
		Indices:   &indexmock.Repo{},
		Scores:    &scoremock.Repo{},
		Transfers: transfers,
	}
	uc := NewUsecase(uowmock.Passthrough(repos), repos)

	dto, err := uc.FundLoan(context.Background(), bob, 5, standardTerms().Amount)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint64(5), dto.ID)
	assert.Equal(t, bob, *saved.Lender)
	require.Len(t, transfers.Created, 1)
	assert.Equal(t, alice, transfers.Created[0].To)
}
