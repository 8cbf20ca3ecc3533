package types

import (
	"time"

	"cropyield/entities"
	"cropyield/pkg/yield"
)

const YieldUnit = "tons/ha"

// Prediction is the response envelope around one engine result.
type Prediction struct {
	ID          string                 `json:"id"`
	Observation yield.FieldObservation `json:"observation"`
	Resolution  yield.Resolution       `json:"resolution"`
	Unit        string                 `json:"unit"`
	CreatedAt   time.Time              `json:"createdAt"`

	yield.PredictionResult

	// factor name -> suggested KB articles; empty when no KB is wired
	Articles map[yield.FactorName][]entities.ArticleRef `json:"articles,omitempty"`
}

// BatchItem keeps the input position so callers can match results to requests.
type BatchItem struct {
	Index      int         `json:"index"`
	Prediction *Prediction `json:"prediction,omitempty"`
	Error      string      `json:"error,omitempty"`
	Field      string      `json:"field,omitempty"`
}
