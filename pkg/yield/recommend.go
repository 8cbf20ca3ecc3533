package yield

import "cropyield/pkg/crop"

type variant string

const (
	variantAny  variant = ""
	variantLow  variant = "low"
	variantHigh variant = "high"
)

type adviceKey struct {
	Factor  FactorName
	Class   crop.Class
	Variant variant
}

var advice = map[adviceKey]string{
	{FactorSoilPH, crop.ClassDefault, variantLow}:   "Apply lime to increase soil pH to optimal range (6.0-7.0)",
	{FactorSoilPH, crop.ClassDefault, variantHigh}:  "Apply sulfur to decrease soil pH to optimal range (6.0-7.0)",
	{FactorSoilPH, crop.ClassMelon, variantLow}:     "Apply lime to increase soil pH to 6.3-7.2 for optimal melon growth",
	{FactorSoilPH, crop.ClassMelon, variantHigh}:    "Apply sulfur to decrease soil pH to 6.3-7.2 range for melons",
	{FactorSoilPH, crop.ClassPumpkin, variantLow}:   "Apply lime to increase soil pH to 6.0-7.0 for pumpkin cultivation",
	{FactorSoilPH, crop.ClassPumpkin, variantHigh}:  "Apply sulfur to decrease soil pH to 6.0-7.0 range for pumpkins",
	{FactorSoilPH, crop.ClassCilantro, variantLow}:  "Apply lime to increase soil pH to 5.8-6.8 for cilantro production",
	{FactorSoilPH, crop.ClassCilantro, variantHigh}: "Apply sulfur to decrease soil pH to 5.8-6.8 range for cilantro",

	{FactorNitrogen, crop.ClassDefault, variantAny}:  "Increase nitrogen fertilizer application to 140-160 kg/ha",
	{FactorNitrogen, crop.ClassMelon, variantAny}:    "Increase nitrogen application to 100-120 kg/ha for melon production",
	{FactorNitrogen, crop.ClassPumpkin, variantAny}:  "Increase nitrogen application to 120-140 kg/ha for pumpkin vine development",
	{FactorNitrogen, crop.ClassCilantro, variantAny}: "Increase nitrogen application to 80-100 kg/ha for cilantro leaf production",

	{FactorRainfall, crop.ClassDefault, variantAny}:  "Consider supplemental irrigation during dry periods",
	{FactorRainfall, crop.ClassMelon, variantAny}:    "Implement drip irrigation - melons prefer controlled watering (400-600mm annually)",
	{FactorRainfall, crop.ClassPumpkin, variantAny}:  "Ensure consistent moisture through irrigation - pumpkins need 650-800mm annually",
	{FactorRainfall, crop.ClassCilantro, variantAny}: "Provide gentle, consistent irrigation - cilantro needs 350-500mm annually",

	{FactorTemperature, crop.ClassDefault, variantAny}:  "Monitor for heat stress and consider shade management",
	{FactorTemperature, crop.ClassMelon, variantAny}:    "Melons prefer warm conditions (22-35°C) - consider greenhouse or season timing",
	{FactorTemperature, crop.ClassPumpkin, variantAny}:  "Adjust planting time for optimal temperature range (18-32°C) for pumpkins",
	{FactorTemperature, crop.ClassCilantro, variantAny}: "Cilantro prefers cool weather (12-25°C) - plant in fall/winter or provide shade",

	{FactorHeatStress, crop.ClassDefault, variantAny}:  "Provide partial shade or shift planting to cooler months to limit heat stress",
	{FactorHeatStress, crop.ClassCilantro, variantAny}: "Plant cilantro in partial shade or during cooler months to prevent bolting",

	{FactorSoilDrainage, crop.ClassDefault, variantAny}: "Improve soil drainage with raised beds or organic matter",
	{FactorSoilDrainage, crop.ClassMelon, variantAny}:   "Improve soil drainage with raised beds or organic matter - melons/pumpkins need well-draining soil",
	{FactorSoilDrainage, crop.ClassPumpkin, variantAny}: "Improve soil drainage with raised beds or organic matter - melons/pumpkins need well-draining soil",

	// any factor without a row of its own
	{"", crop.ClassDefault, variantAny}: "Review field conditions against the crop's recommended ranges",
}

var affirmations = map[crop.Class]string{
	crop.ClassDefault:  "Current conditions are optimal for maximum yield",
	crop.ClassMelon:    "Conditions are good for melons - ensure consistent drip irrigation and warm temperatures",
	crop.ClassPumpkin:  "Conditions are optimal for pumpkins - maintain consistent moisture and monitor for pests",
	crop.ClassCilantro: "Conditions are excellent for cilantro - harvest before bolting in warm weather",
}

// Recommend returns one sentence per factor, in the factors' order, or a
// single class-specific affirmation when there are none. Text is looked up by
// (factor, crop class); classes without their own sentence use the default
// class, and factors without any row use the generic row. A pH reading below
// the profile's minimum selects the lime advice, anything else the sulfur
// advice.
func Recommend(p crop.Profile, factors []LimitingFactor) []string {
	if len(factors) == 0 {
		if s, ok := affirmations[p.Class]; ok {
			return []string{s}
		}
		return []string{affirmations[crop.ClassDefault]}
	}

	out := make([]string, 0, len(factors))
	for _, f := range factors {
		v := variantAny
		if f.Name == FactorSoilPH {
			v = variantHigh
			if ph, ok := f.Value.(float64); ok && ph < p.PHMin {
				v = variantLow
			}
		}
		out = append(out, adviceFor(f.Name, p.Class, v))
	}
	return out
}

// adviceFor walks the table from the most to the least specific key. The
// last key always has a row.
func adviceFor(f FactorName, c crop.Class, v variant) string {
	for _, k := range []adviceKey{
		{f, c, v},
		{f, crop.ClassDefault, v},
		{"", crop.ClassDefault, variantAny},
	} {
		if s, ok := advice[k]; ok {
			return s
		}
	}
	return ""
}
