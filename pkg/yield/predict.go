package yield

import "cropyield/pkg/crop"

// Resolve picks the profile for o and records which categorical lookups
// matched exactly.
func Resolve(o FieldObservation, t *crop.Table) (crop.Profile, Resolution) {
	p, cropOK := t.Lookup(o.CropType)
	soil, _ := crop.ParseSoil(o.SoilType)
	irr, _ := crop.ParseIrrigation(o.IrrigationType)
	_, soilOK := p.Soil(soil)
	_, irrOK := p.Irrigation(irr)
	return p, Resolution{
		Profile:         p.Name,
		Class:           p.Class,
		Soil:            soil,
		Irrigation:      irr,
		CropExact:       cropOK,
		SoilExact:       soilOK,
		IrrigationExact: irrOK,
	}
}

// Predict validates o and runs the estimator, confidence, factor analysis and
// recommendation steps. The only error it returns is a *ParamError.
func Predict(o FieldObservation, t *crop.Table, noise NoiseSource) (PredictionResult, Resolution, error) {
	if err := o.Validate(); err != nil {
		return PredictionResult{}, Resolution{}, err
	}
	p, res := Resolve(o, t)

	factors := Analyze(o, p)
	return PredictionResult{
		YieldEstimate:   Estimate(o, p, noise),
		Confidence:      Confidence(noise),
		LimitingFactors: factors,
		Recommendations: Recommend(p, factors),
	}, res, nil
}
