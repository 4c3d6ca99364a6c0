package index

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

type Repository interface {
	AddActive(ctx context.Context, loanID uint64) error
	// RemoveActive keeps the relative order of the remaining ids.
	RemoveActive(ctx context.Context, loanID uint64) error
	ListActive(ctx context.Context) ([]uint64, error)

	Append(ctx context.Context, identity common.Address, role Role, loanID uint64) error
	List(ctx context.Context, identity common.Address, role Role) ([]uint64, error)
}
