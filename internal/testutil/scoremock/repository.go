package scoremock

import (
	"context"

	"creditledger/internal/domain/score"

	"github.com/ethereum/go-ethereum/common"
)

var _ score.Repository = (*Repo)(nil)

type Repo struct {
	GetFn   func(ctx context.Context, identity common.Address) (uint64, error)
	AwardFn func(ctx context.Context, identity common.Address, points uint64) (uint64, error)
}

func (m *Repo) Get(ctx context.Context, identity common.Address) (uint64, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, identity)
	}
	return 0, nil
}

func (m *Repo) Award(ctx context.Context, identity common.Address, points uint64) (uint64, error) {
	if m.AwardFn != nil {
		return m.AwardFn(ctx, identity, points)
	}
	return points, nil
}
