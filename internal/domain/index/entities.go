package index

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Role string

const (
	RoleBorrower Role = "borrower"
	RoleLender   Role = "lender"
)

// ActiveRequest marks a loan that is open for funding.
// Loan ids are allocated in request order, so ordering by id is request order.
type ActiveRequest struct {
	LoanID    uint64    `gorm:"primaryKey;autoIncrement:false;column:loan_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ActiveRequest) TableName() string { return "active_loan_requests" }

// Entry is one append-only line of a per-identity index.
// Seq orders entries by the time the transition happened.
type Entry struct {
	Seq       uint64         `gorm:"primaryKey;autoIncrement;column:seq"`
	Identity  common.Address `gorm:"column:identity;type:bytes;size:20;not null;uniqueIndex:ux_loan_index_entry"`
	Role      Role           `gorm:"column:role;type:string;size:16;not null;uniqueIndex:ux_loan_index_entry"`
	LoanID    uint64         `gorm:"column:loan_id;not null;uniqueIndex:ux_loan_index_entry"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (Entry) TableName() string { return "loan_index_entries" }
