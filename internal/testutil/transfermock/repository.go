package transfermock

import (
	"context"
	"sync"

	"creditledger/internal/domain/transfer"
)

var _ transfer.Repository = (*Repo)(nil)

// Repo keeps created transfers in memory.
type Repo struct {
	mu      sync.Mutex
	Created []transfer.Transfer
	Err     error
}

func (m *Repo) Create(_ context.Context, t *transfer.Transfer) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = append(m.Created, *t)
	return nil
}

func (m *Repo) ListByLoanID(_ context.Context, loanID uint64) ([]transfer.Transfer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []transfer.Transfer{}
	for _, t := range m.Created {
		if t.LoanID == loanID {
			out = append(out, t)
		}
	}
	return out, nil
}
