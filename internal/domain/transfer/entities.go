package transfer

import (
	"context"
	"time"

	"creditledger/pkg/wei"

	"github.com/ethereum/go-ethereum/common"
)

type Kind string

const (
	// KindDisbursement moves the principal from lender to borrower at funding.
	KindDisbursement Kind = "disbursement"
	// KindRepayment moves principal plus interest from borrower to lender.
	KindRepayment Kind = "repayment"
)

// Transfer is a journaled value movement, written in the same transaction
// as the lifecycle change that caused it.
type Transfer struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	Reference string         `gorm:"column:reference;type:string;size:32;not null;uniqueIndex:ux_transfers_reference" json:"reference"`
	LoanID    uint64         `gorm:"column:loan_id;not null;index:idx_transfers_loan" json:"loan_id"`
	Kind      Kind           `gorm:"column:kind;type:string;size:16;not null" json:"kind"`
	From      common.Address `gorm:"column:from_identity;type:bytes;size:20;not null" json:"from"`
	To        common.Address `gorm:"column:to_identity;type:bytes;size:20;not null" json:"to"`
	Amount    wei.Amount     `gorm:"column:amount;type:string;size:78;not null" json:"amount"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Transfer) TableName() string { return "transfers" }

type Repository interface {
	Create(ctx context.Context, t *Transfer) error
	ListByLoanID(ctx context.Context, loanID uint64) ([]Transfer, error)
}

// Gateway is the execution environment that actually moves value.
// It is called inside the ledger transaction; an error aborts the operation.
type Gateway interface {
	Settle(ctx context.Context, t *Transfer) error
}

// AcceptAll is a Gateway for environments that settle value out of band.
type AcceptAll struct{}

func (AcceptAll) Settle(context.Context, *Transfer) error { return nil }

// GatewayFunc adapts a function to Gateway.
type GatewayFunc func(ctx context.Context, t *Transfer) error

func (f GatewayFunc) Settle(ctx context.Context, t *Transfer) error { return f(ctx, t) }
