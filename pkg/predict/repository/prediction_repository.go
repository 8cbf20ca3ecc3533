package repository

import (
	"context"

	"cropyield/entities"
)

type PredictionRepository interface {
	Append(ctx context.Context, l *entities.PredictionLog) error
	Recent(ctx context.Context, limit int) ([]entities.PredictionLog, error)
}
