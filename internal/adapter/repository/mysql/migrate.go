package mysql

import (
	"creditledger/internal/domain/index"
	"creditledger/internal/domain/loan"
	"creditledger/internal/domain/score"
	"creditledger/internal/domain/transfer"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates the ledger tables and seeds the loan id counter.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&ledgerCounter{},
		&loan.Loan{},
		&index.ActiveRequest{},
		&index.Entry{},
		&score.CreditScore{},
		&transfer.Transfer{},
	); err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ledgerCounter{Name: loanCounterName}).Error
}
