package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"cropyield/entities"
	"cropyield/pkg/predict/repository"
)

type predictionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PredictionRepository { return &predictionRepo{db} }

func (r *predictionRepo) Append(ctx context.Context, l *entities.PredictionLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// Recent returns the newest entries first.
func (r *predictionRepo) Recent(ctx context.Context, limit int) ([]entities.PredictionLog, error) {
	var out []entities.PredictionLog
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
