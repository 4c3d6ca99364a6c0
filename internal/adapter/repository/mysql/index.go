package mysql

import (
	"context"

	"creditledger/internal/domain/index"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"
)

type IndexRepository struct{ db *gorm.DB }

func NewIndexRepository(db *gorm.DB) *IndexRepository { return &IndexRepository{db: db} }

func (r *IndexRepository) AddActive(ctx context.Context, loanID uint64) error {
	return r.db.WithContext(ctx).Create(&index.ActiveRequest{LoanID: loanID}).Error
}

func (r *IndexRepository) RemoveActive(ctx context.Context, loanID uint64) error {
	return r.db.WithContext(ctx).Where("loan_id = ?", loanID).Delete(&index.ActiveRequest{}).Error
}

func (r *IndexRepository) ListActive(ctx context.Context) ([]uint64, error) {
	ids := []uint64{}
	err := r.db.WithContext(ctx).
		Model(&index.ActiveRequest{}).
		Order("loan_id ASC").
		Pluck("loan_id", &ids).Error
	return ids, err
}

func (r *IndexRepository) Append(ctx context.Context, identity common.Address, role index.Role, loanID uint64) error {
	return r.db.WithContext(ctx).Create(&index.Entry{Identity: identity, Role: role, LoanID: loanID}).Error
}

func (r *IndexRepository) List(ctx context.Context, identity common.Address, role index.Role) ([]uint64, error) {
	ids := []uint64{}
	err := r.db.WithContext(ctx).
		Model(&index.Entry{}).
		Where("identity = ? AND role = ?", identity.Bytes(), role).
		Order("seq ASC").
		Pluck("loan_id", &ids).Error
	return ids, err
}
