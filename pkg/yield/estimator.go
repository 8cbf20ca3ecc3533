package yield

import (
	"math"

	"cropyield/pkg/crop"
)

// Floors keep any single bad dimension from driving yield toward zero.
const (
	PHFloor       = 0.7
	NutrientFloor = 0.6
	TempFloor     = 0.5
	RainfallFloor = 0.6

	MinYield    = 1.0
	YieldSpread = 0.15
)

func PHFactor(p crop.Profile, ph float64) float64 {
	return math.Max(PHFloor, 1-math.Abs(ph-p.PHOptimal)*0.1)
}

// NutrientFactor averages the N, P and K penalties before applying the floor.
func NutrientFactor(p crop.Profile, n, phos, k float64) float64 {
	nF := 1 - math.Abs(n-p.NOptimal)/p.NOptimal*0.3
	pF := 1 - math.Abs(phos-p.POptimal)/p.POptimal*0.2
	kF := 1 - math.Abs(k-p.KOptimal)/p.KOptimal*0.25
	return math.Max(NutrientFloor, (nF+pF+kF)/3)
}

func TemperatureFactor(p crop.Profile, t float64) float64 {
	return math.Max(TempFloor, 1-math.Abs(t-p.TempOptimal)/p.TempOptimal*0.4)
}

func RainfallFactor(p crop.Profile, r float64) float64 {
	return math.Max(RainfallFloor, 1-math.Abs(r-p.RainfallOptimal)/p.RainfallOptimal*0.3)
}

// Estimate composes the multiplicative factors, adds noise in
// [-YieldSpread, +YieldSpread], rounds to two decimals and floors at MinYield.
// Unknown soil or irrigation values contribute a neutral 1.0.
func Estimate(o FieldObservation, p crop.Profile, noise NoiseSource) float64 {
	soil, _ := crop.ParseSoil(o.SoilType)
	irr, _ := crop.ParseIrrigation(o.IrrigationType)
	soilM, _ := p.Soil(soil)
	irrB, _ := p.Irrigation(irr)
	r := o.Reading()

	y := p.BaseYield
	y *= soilM
	y *= PHFactor(p, r.SoilPH)
	y *= NutrientFactor(p, r.Nitrogen, r.Phosphorus, r.Potassium)
	y *= TemperatureFactor(p, r.Temperature)
	y *= RainfallFactor(p, r.Rainfall)
	y *= irrB
	y += noise.Uniform(-YieldSpread, YieldSpread)

	return math.Max(MinYield, round(y, 2))
}

// Confidence is the heuristic's self-reported certainty. It does not look at
// the observation.
func Confidence(noise NoiseSource) float64 {
	c := 85 + noise.Uniform(0, 10)
	return round(math.Min(95, math.Max(70, c)), 1)
}

func round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
