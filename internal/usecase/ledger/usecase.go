package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"creditledger/internal/domain/event"
	"creditledger/internal/domain/index"
	"creditledger/internal/domain/loan"
	"creditledger/internal/domain/score"
	"creditledger/internal/domain/transfer"
	"creditledger/internal/domain/uow"
	"creditledger/pkg/id"
	"creditledger/pkg/wei"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// Observer is told the outcome of every mutating operation.
type Observer interface {
	ObserveOp(op string, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveOp(string, error) {}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

// WithDurationUnit sets the length of one requested duration unit.
func WithDurationUnit(d time.Duration) Option { return func(u *Usecase) { u.unit = d } }

func WithGateway(g transfer.Gateway) Option { return func(u *Usecase) { u.gateway = g } }

func WithPublisher(p event.Publisher) Option { return func(u *Usecase) { u.events = p } }

func WithObserver(o Observer) Option { return func(u *Usecase) { u.observer = o } }

// Usecase is the loan lifecycle state machine. Mutations are serialized
// and each one commits as a single transaction.
type Usecase struct {
	uow   uow.UnitOfWork
	reads uow.Repos

	gateway  transfer.Gateway
	events   event.Publisher
	observer Observer
	now      func() time.Time
	unit     time.Duration

	mu sync.Mutex
}

// NewUsecase: tx runs the mutations, reads serves queries against committed state.
func NewUsecase(tx uow.UnitOfWork, reads uow.Repos, opts ...Option) *Usecase {
	u := &Usecase{
		uow:      tx,
		reads:    reads,
		gateway:  transfer.AcceptAll{},
		events:   event.Nop{},
		observer: nopObserver{},
		now:      func() time.Time { return time.Now().UTC() },
		unit:     24 * time.Hour,
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

func (u *Usecase) RequestLoan(ctx context.Context, caller common.Address, in RequestLoanInput) (dto *LoanDTO, err error) {
	defer func() { u.observer.ObserveOp("request", err) }()

	now := u.now()
	if err := u.validateRequest(now, in); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	var created *loan.Loan
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		loanID, err := r.Loans.NextID(ctx)
		if err != nil {
			return err
		}
		l := &loan.Loan{
			ID:              loanID,
			Borrower:        caller,
			Principal:       in.Amount,
			DurationUnits:   in.DurationUnits,
			InterestRateBps: in.InterestRateBps,
			Active:          true,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if err := r.Indices.Append(ctx, caller, index.RoleBorrower, loanID); err != nil {
			return err
		}
		if _, err := r.Scores.Award(ctx, caller, score.BorrowingPoints); err != nil {
			return err
		}
		if err := r.Indices.AddActive(ctx, loanID); err != nil {
			return err
		}
		created = l
		return nil
	})
	if err != nil {
		return nil, u.fail("request", err)
	}

	u.publish(ctx, event.LoanCreated, created.ID, caller, now)
	return toDTO(created)
}

func (u *Usecase) validateRequest(now time.Time, in RequestLoanInput) error {
	if in.Amount.IsZero() {
		return loan.NewValidationError("amount", "Amount must be greater than 0")
	}
	if in.DurationUnits == 0 {
		return loan.NewValidationError("duration", "Duration must be greater than 0")
	}
	if in.InterestRateBps > loan.MaxInterestRateBps {
		return loan.NewValidationError("interest_rate", "Interest rate too high")
	}
	if _, err := loan.DueAt(now, in.DurationUnits, u.unit); err != nil {
		return loan.NewValidationError("duration", "Duration too long")
	}
	terms := loan.Loan{Principal: in.Amount, InterestRateBps: in.InterestRateBps}
	if _, err := terms.RepaymentAmount(); err != nil {
		return loan.NewValidationError("amount", "Amount too large")
	}
	return nil
}

func (u *Usecase) FundLoan(ctx context.Context, caller common.Address, loanID uint64, value wei.Amount) (dto *LoanDTO, err error) {
	defer func() { u.observer.ObserveOp("fund", err) }()

	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	var funded *loan.Loan
	err = u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Funded() {
			return loan.ErrAlreadyFunded
		}
		if !l.Active {
			return loan.ErrLoanInactive
		}
		if l.Borrower == caller {
			return loan.ErrSelfFunding
		}
		if !value.Eq(l.Principal) {
			return loan.ErrAmountMismatch
		}
		due, err := loan.DueAt(now, l.DurationUnits, u.unit)
		if err != nil {
			return err
		}

		lender := caller
		l.Lender = &lender
		l.FundedAt = &now
		l.DueAt = &due
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Indices.RemoveActive(ctx, l.ID); err != nil {
			return err
		}
		if err := r.Indices.Append(ctx, caller, index.RoleLender, l.ID); err != nil {
			return err
		}
		if err := u.settle(ctx, r, l.ID, transfer.KindDisbursement, caller, l.Borrower, l.Principal); err != nil {
			return err
		}
		if _, err := r.Scores.Award(ctx, caller, score.LendingPoints); err != nil {
			return err
		}
		funded = l
		return nil
	})
	if err != nil {
		return nil, u.fail("fund", err)
	}

	u.publish(ctx, event.LoanFunded, funded.ID, caller, now)
	return toDTO(funded)
}

func (u *Usecase) RepayLoan(ctx context.Context, caller common.Address, loanID uint64, value wei.Amount) (dto *LoanDTO, err error) {
	defer func() { u.observer.ObserveOp("repay", err) }()

	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	var repaid *loan.Loan
	err = u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if !l.Active {
			return loan.ErrLoanInactive
		}
		if !l.Funded() {
			return loan.ErrNotFunded
		}
		if l.Borrower != caller {
			return loan.ErrNotBorrower
		}
		owed, err := l.RepaymentAmount()
		if err != nil {
			return err
		}
		if !value.Eq(owed) {
			return loan.ErrAmountMismatch
		}
		if l.DueAt == nil {
			return fmt.Errorf("loan %d is funded without a due date", l.ID)
		}

		l.Repaid = true
		l.Active = false
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := u.settle(ctx, r, l.ID, transfer.KindRepayment, caller, *l.Lender, value); err != nil {
			return err
		}
		// late repayment completes but earns nothing
		if !now.After(*l.DueAt) {
			if _, err := r.Scores.Award(ctx, caller, score.RepaymentPoints); err != nil {
				return err
			}
		}
		repaid = l
		return nil
	})
	if err != nil {
		return nil, u.fail("repay", err)
	}

	u.publish(ctx, event.LoanRepaid, repaid.ID, caller, now)
	return toDTO(repaid)
}

func (u *Usecase) CancelLoan(ctx context.Context, caller common.Address, loanID uint64) (dto *LoanDTO, err error) {
	defer func() { u.observer.ObserveOp("cancel", err) }()

	u.mu.Lock()
	defer u.mu.Unlock()

	var cancelled *loan.Loan
	err = u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Borrower != caller {
			return loan.ErrNotBorrower
		}
		if l.Funded() {
			return loan.ErrAlreadyFunded
		}
		if !l.Active {
			return loan.ErrLoanInactive
		}

		l.Active = false
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Indices.RemoveActive(ctx, l.ID); err != nil {
			return err
		}
		cancelled = l
		return nil
	})
	if err != nil {
		return nil, u.fail("cancel", err)
	}

	u.publish(ctx, event.LoanCancelled, cancelled.ID, caller, u.now())
	return toDTO(cancelled)
}

// settle journals the movement and hands it to the gateway inside the same tx.
func (u *Usecase) settle(ctx context.Context, r uow.Repos, loanID uint64, kind transfer.Kind, from, to common.Address, amount wei.Amount) error {
	t := &transfer.Transfer{
		Reference: id.NewID32(),
		LoanID:    loanID,
		Kind:      kind,
		From:      from,
		To:        to,
		Amount:    amount,
	}
	if err := r.Transfers.Create(ctx, t); err != nil {
		return err
	}
	if err := u.gateway.Settle(ctx, t); err != nil {
		return fmt.Errorf("settle %s for loan %d: %w", kind, loanID, err)
	}
	return nil
}

func (u *Usecase) fail(op string, err error) error {
	if errors.Is(err, loan.ErrArithmeticOverflow) {
		log.Printf("ledger: %s aborted on arithmetic overflow: %v", op, err)
	}
	return err
}

// publish runs after commit; a failure is logged since the state change already happened.
func (u *Usecase) publish(ctx context.Context, typ event.Type, loanID uint64, actor common.Address, at time.Time) {
	e := event.Event{
		ID:         uuid.NewString(),
		Type:       typ,
		LoanID:     loanID,
		Actor:      actor,
		OccurredAt: at,
	}
	if err := u.events.Publish(ctx, e); err != nil {
		log.Printf("ledger: publish %s for loan %d: %v", typ, loanID, err)
	}
}
