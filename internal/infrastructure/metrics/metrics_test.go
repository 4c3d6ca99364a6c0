package metrics

import (
	"errors"
	"testing"

	"creditledger/internal/domain/loan"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLedger_ObserveOp(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLedger(reg)

	m.ObserveOp("fund", nil)
	m.ObserveOp("fund", nil)
	m.ObserveOp("fund", loan.ErrAlreadyFunded)

	if got := testutil.ToFloat64(m.ops.WithLabelValues("fund", "ok")); got != 2 {
		t.Fatalf("fund/ok = %v", got)
	}
	if got := testutil.ToFloat64(m.ops.WithLabelValues("fund", "conflict")); got != 1 {
		t.Fatalf("fund/conflict = %v", got)
	}
}

func TestResult(t *testing.T) {
	cases := map[string]error{
		"ok":              nil,
		"validation":      loan.NewValidationError("amount", "Amount must be greater than 0"),
		"not_found":       loan.ErrNotFound,
		"conflict":        loan.ErrSelfFunding,
		"amount_mismatch": loan.ErrAmountMismatch,
		"overflow":        loan.ErrArithmeticOverflow,
		"error":           errors.New("db down"),
	}
	for want, err := range cases {
		if got := Result(err); got != want {
			t.Fatalf("Result(%v) = %s, want %s", err, got, want)
		}
	}
}
