package yield

import "cropyield/pkg/crop"

// HeatStressAbove is the temperature above which heat-stress-sensitive crops
// are flagged, independently of their temperature range.
const HeatStressAbove = 22.0

const poorDrainageNote = "Poor drainage in clay soil"

// Analyze checks the observation against the profile's diagnostic ranges in a
// fixed order: pH, nitrogen, rainfall, temperature, then the profile's special
// rules. Checks are independent; nothing is deduplicated. Range bounds are
// inclusive.
func Analyze(o FieldObservation, p crop.Profile) []LimitingFactor {
	out := make([]LimitingFactor, 0, 6)
	r := o.Reading()

	if r.SoilPH < p.PHMin || r.SoilPH > p.PHMax {
		out = append(out, LimitingFactor{Name: FactorSoilPH, Impact: ImpactHigh, Value: r.SoilPH})
	}
	if r.Nitrogen < p.NMin {
		out = append(out, LimitingFactor{Name: FactorNitrogen, Impact: ImpactMedium, Value: r.Nitrogen})
	}
	if r.Rainfall < p.RainfallMin {
		out = append(out, LimitingFactor{Name: FactorRainfall, Impact: ImpactHigh, Value: r.Rainfall})
	}
	if r.Temperature < p.TempMin || r.Temperature > p.TempMax {
		out = append(out, LimitingFactor{Name: FactorTemperature, Impact: ImpactMedium, Value: r.Temperature})
	}

	if p.Has(crop.RuleHeatStressSensitive) && r.Temperature > HeatStressAbove {
		out = append(out, LimitingFactor{Name: FactorHeatStress, Impact: ImpactHigh, Value: r.Temperature})
	}
	if p.Has(crop.RuleDrainageSensitive) {
		if soil, _ := crop.ParseSoil(o.SoilType); soil == crop.SoilClay {
			out = append(out, LimitingFactor{Name: FactorSoilDrainage, Impact: ImpactMedium, Value: poorDrainageNote})
		}
	}
	return out
}
