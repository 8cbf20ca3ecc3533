package service

import (
	"context"

	"cropyield/entities"
	"cropyield/pkg/predict/types"
	"cropyield/pkg/yield"
)

type PredictService interface {
	Predict(ctx context.Context, in yield.FieldObservation) (*types.Prediction, error)
	PredictField(ctx context.Context, f *entities.Field) (*types.Prediction, error)
	PredictBatch(ctx context.Context, in []yield.FieldObservation) []types.BatchItem
	Recent(ctx context.Context, limit int) ([]entities.PredictionLog, error)
}
