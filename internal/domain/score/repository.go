package score

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

type Repository interface {
	// Get returns 0 for identities that never scored.
	Get(ctx context.Context, identity common.Address) (uint64, error)
	// Award adds points and returns the new score.
	Award(ctx context.Context, identity common.Address, points uint64) (uint64, error)
}
