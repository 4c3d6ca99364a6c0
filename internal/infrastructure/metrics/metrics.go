package metrics

import (
	"errors"

	"creditledger/internal/domain/loan"

	"github.com/prometheus/client_golang/prometheus"
)

// Ledger counts lifecycle operations by outcome.
type Ledger struct {
	ops *prometheus.CounterVec
}

func NewLedger(reg prometheus.Registerer) *Ledger {
	m := &Ledger{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "creditledger",
			Name:      "operations_total",
			Help:      "Ledger lifecycle operations by operation and result.",
		}, []string{"op", "result"}),
	}
	reg.MustRegister(m.ops)
	return m
}

func (m *Ledger) ObserveOp(op string, err error) {
	m.ops.WithLabelValues(op, Result(err)).Inc()
}

// Result buckets an operation error into a low-cardinality label.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, loan.ErrValidation):
		return "validation"
	case errors.Is(err, loan.ErrNotFound):
		return "not_found"
	case errors.Is(err, loan.ErrStateConflict):
		return "conflict"
	case errors.Is(err, loan.ErrAmountMismatch):
		return "amount_mismatch"
	case errors.Is(err, loan.ErrArithmeticOverflow):
		return "overflow"
	default:
		return "error"
	}
}
