package mysql

import (
	"context"
	"errors"

	"creditledger/internal/domain/score"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoreRepository struct{ db *gorm.DB }

func NewScoreRepository(db *gorm.DB) *ScoreRepository { return &ScoreRepository{db: db} }

func (r *ScoreRepository) Get(ctx context.Context, identity common.Address) (uint64, error) {
	var out score.CreditScore
	err := r.db.WithContext(ctx).Where("identity = ?", identity.Bytes()).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return out.Score, err
}

// Award reads the current score under a row lock and upserts the checked sum.
func (r *ScoreRepository) Award(ctx context.Context, identity common.Address, points uint64) (uint64, error) {
	db := r.db.WithContext(ctx)
	var cur score.CreditScore
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("identity = ?", identity.Bytes()).
		First(&cur).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	next, err := score.Add(cur.Score, points)
	if err != nil {
		return 0, err
	}
	row := score.CreditScore{Identity: identity, Score: next}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}
