package event

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Type string

const (
	LoanCreated   Type = "LoanCreated"
	LoanFunded    Type = "LoanFunded"
	LoanRepaid    Type = "LoanRepaid"
	LoanCancelled Type = "LoanCancelled"
)

// Event is a committed lifecycle transition. Actor is the caller that
// triggered it.
type Event struct {
	ID         string         `json:"id"`
	Type       Type           `json:"type"`
	LoanID     uint64         `json:"loan_id"`
	Actor      common.Address `json:"actor"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
