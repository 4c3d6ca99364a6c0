package loan

import (
	"errors"
	"testing"
	"time"

	"creditledger/pkg/wei"

	"github.com/ethereum/go-ethereum/common"
)

func TestInterest(t *testing.T) {
	cases := []struct {
		principal wei.Amount
		bps       uint64
		want      string
	}{
		{wei.MustEther("0.1"), 500, "5000000000000000"},
		{wei.MustEther("1"), 3000, "300000000000000000"},
		{wei.New(1), 3000, "0"},
		{wei.New(999), 500, "49"},
		{wei.MustEther("0.1"), 0, "0"},
	}
	for _, tc := range cases {
		got, err := Interest(tc.principal, tc.bps)
		if err != nil {
			t.Fatalf("Interest(%s, %d): %v", tc.principal, tc.bps, err)
		}
		if got.String() != tc.want {
			t.Fatalf("Interest(%s, %d) = %s, want %s", tc.principal, tc.bps, got, tc.want)
		}
	}
}

func TestRepaymentAmount(t *testing.T) {
	l := &Loan{Principal: wei.MustEther("0.1"), InterestRateBps: 500}
	got, err := l.RepaymentAmount()
	if err != nil {
		t.Fatalf("RepaymentAmount: %v", err)
	}
	if !got.Eq(wei.MustEther("0.105")) {
		t.Fatalf("got %s", got)
	}
}

func TestDueAt(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	due, err := DueAt(start, 30, 24*time.Hour)
	if err != nil {
		t.Fatalf("DueAt: %v", err)
	}
	if want := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC); !due.Equal(want) {
		t.Fatalf("due = %s, want %s", due, want)
	}

	for _, units := range []uint64{1 << 62, 1 << 63, ^uint64(0)} {
		if _, err := DueAt(start, units, 24*time.Hour); !errors.Is(err, ErrArithmeticOverflow) {
			t.Fatalf("DueAt(%d units): want overflow, got %v", units, err)
		}
	}
	if _, err := DueAt(start, 1, 0); !errors.Is(err, ErrArithmeticOverflow) {
		t.Fatalf("zero unit must fail")
	}
}

func TestState(t *testing.T) {
	lender := common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	cases := []struct {
		loan Loan
		want State
	}{
		{Loan{Active: true}, StateRequested},
		{Loan{Active: true, Lender: &lender}, StateFunded},
		{Loan{Active: false, Lender: &lender, Repaid: true}, StateRepaid},
		{Loan{Active: false}, StateCancelled},
	}
	for _, tc := range cases {
		if got := tc.loan.State(); got != tc.want {
			t.Fatalf("State() = %s, want %s", got, tc.want)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	for _, err := range []error{ErrAlreadyFunded, ErrLoanInactive, ErrSelfFunding, ErrNotFunded, ErrNotBorrower} {
		if !errors.Is(err, ErrStateConflict) {
			t.Fatalf("%v should be a state conflict", err)
		}
		if errors.Is(err, ErrValidation) {
			t.Fatalf("%v must not be a validation error", err)
		}
	}
	var err error = NewValidationError("amount", "Amount must be greater than 0")
	if !errors.Is(err, ErrValidation) || errors.Is(err, ErrStateConflict) {
		t.Fatalf("validation error kind mismatch")
	}
	if err.Error() != "Amount must be greater than 0" {
		t.Fatalf("message = %q", err.Error())
	}
}
