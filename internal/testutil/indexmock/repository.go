package indexmock

import (
	"context"

	"creditledger/internal/domain/index"

	"github.com/ethereum/go-ethereum/common"
)

var _ index.Repository = (*Repo)(nil)

// Repo is a function-backed index.Repository; unset funcs succeed with empty results.
type Repo struct {
	AddActiveFn    func(ctx context.Context, loanID uint64) error
	RemoveActiveFn func(ctx context.Context, loanID uint64) error
	ListActiveFn   func(ctx context.Context) ([]uint64, error)
	AppendFn       func(ctx context.Context, identity common.Address, role index.Role, loanID uint64) error
	ListFn         func(ctx context.Context, identity common.Address, role index.Role) ([]uint64, error)
}

func (m *Repo) AddActive(ctx context.Context, loanID uint64) error {
	if m.AddActiveFn != nil {
		return m.AddActiveFn(ctx, loanID)
	}
	return nil
}

func (m *Repo) RemoveActive(ctx context.Context, loanID uint64) error {
	if m.RemoveActiveFn != nil {
		return m.RemoveActiveFn(ctx, loanID)
	}
	return nil
}

func (m *Repo) ListActive(ctx context.Context) ([]uint64, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return []uint64{}, nil
}

func (m *Repo) Append(ctx context.Context, identity common.Address, role index.Role, loanID uint64) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, identity, role, loanID)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, identity common.Address, role index.Role) ([]uint64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, identity, role)
	}
	return []uint64{}, nil
}
