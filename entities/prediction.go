package entities

import (
	"time"

	"cropyield/pkg/yield"
)

// PredictionLog is the audit record of one served prediction. It is written
// after the fact and never read back into the engine.
type PredictionLog struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PredictionID string `gorm:"uniqueIndex;size:36" json:"prediction_id"`
	FieldID      *uint  `gorm:"index" json:"field_id,omitempty"`

	CropType       string `gorm:"index" json:"crop_type"`
	Profile        string `json:"profile"`
	SoilType       string `json:"soil_type"`
	IrrigationType string `json:"irrigation_type"`
	Region         string `json:"region"`
	Fallback       bool   `json:"fallback"`

	YieldEstimate float64 `json:"yield_estimate"`
	Confidence    float64 `json:"confidence"`
	FactorCount   int     `json:"factor_count"`

	Observation     yield.FieldObservation `gorm:"serializer:json" json:"observation"`
	Factors         []yield.LimitingFactor `gorm:"serializer:json" json:"factors"`
	Recommendations []string               `gorm:"serializer:json" json:"recommendations"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
