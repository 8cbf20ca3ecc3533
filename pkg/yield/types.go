// Package yield turns a field observation into a yield estimate, a confidence
// score, the limiting factors found in the observation and advisory text.
//
// Every function here is a pure computation over its inputs plus an injected
// NoiseSource; nothing is cached between calls.
package yield

import "cropyield/pkg/crop"

type FactorName string

const (
	FactorSoilPH       FactorName = "SoilPH"
	FactorNitrogen     FactorName = "Nitrogen"
	FactorRainfall     FactorName = "Rainfall"
	FactorTemperature  FactorName = "Temperature"
	FactorHeatStress   FactorName = "HeatStressRisk"
	FactorSoilDrainage FactorName = "SoilDrainage"
)

var factorLabels = map[FactorName]string{
	FactorSoilPH:       "Soil pH",
	FactorNitrogen:     "Nitrogen Level",
	FactorRainfall:     "Rainfall",
	FactorTemperature:  "Temperature",
	FactorHeatStress:   "Heat Stress Risk",
	FactorSoilDrainage: "Soil Drainage",
}

// Label is the human readable name shown next to a factor.
func (f FactorName) Label() string {
	if l, ok := factorLabels[f]; ok {
		return l
	}
	return string(f)
}

type Impact string

const (
	ImpactLow    Impact = "Low"
	ImpactMedium Impact = "Medium"
	ImpactHigh   Impact = "High"
)

// LimitingFactor flags one input dimension outside the crop's acceptable
// range. Value is the observed number, or a short note for categorical checks.
type LimitingFactor struct {
	Name   FactorName `json:"factor"`
	Impact Impact     `json:"impact"`
	Value  any        `json:"value"`
}

type PredictionResult struct {
	YieldEstimate   float64          `json:"yieldEstimate"`
	Confidence      float64          `json:"confidence"`
	LimitingFactors []LimitingFactor `json:"limitingFactors"`
	Recommendations []string         `json:"recommendations"`
}

// Resolution records how the categorical inputs were matched. A false
// *Exact flag means the documented fallback was used.
type Resolution struct {
	Profile         string              `json:"profile"`
	Class           crop.Class          `json:"class"`
	Soil            crop.SoilType       `json:"soil"`
	Irrigation      crop.IrrigationType `json:"irrigation"`
	CropExact       bool                `json:"cropExact"`
	SoilExact       bool                `json:"soilExact"`
	IrrigationExact bool                `json:"irrigationExact"`
}

// Fallback reports whether any lookup resolved via a default.
func (r Resolution) Fallback() bool {
	return !r.CropExact || !r.SoilExact || !r.IrrigationExact
}
