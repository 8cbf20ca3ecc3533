package crop

import "strings"

type SoilType string

const (
	SoilClay  SoilType = "clay"
	SoilSandy SoilType = "sandy"
	SoilLoam  SoilType = "loam"
	SoilSilt  SoilType = "silt"
)

type IrrigationType string

const (
	IrrigationNone      IrrigationType = "none"
	IrrigationFlood     IrrigationType = "flood"
	IrrigationSprinkler IrrigationType = "sprinkler"
	IrrigationDrip      IrrigationType = "drip"
)

// Rule tags enable crop-class diagnostics on top of the range checks.
type Rule string

const (
	RuleHeatStressSensitive Rule = "heat-stress-sensitive"
	RuleDrainageSensitive   Rule = "drainage-sensitive"
)

// Class groups crops that share advisory text.
type Class string

const (
	ClassDefault  Class = "default"
	ClassMelon    Class = "melon"
	ClassPumpkin  Class = "pumpkin"
	ClassCilantro Class = "cilantro"
)

// Profile holds the optimal values used by the yield penalty curves and the
// acceptable ranges used for diagnostics. The two are configured separately
// and are not expected to agree.
type Profile struct {
	Name  string `json:"name"`
	Class Class  `json:"class"`

	BaseYield      float64              `json:"baseYield"`
	SoilMultiplier map[SoilType]float64 `json:"soilMultiplier"`

	PHOptimal float64 `json:"phOptimal"`
	PHMin     float64 `json:"phMin"`
	PHMax     float64 `json:"phMax"`

	NOptimal float64 `json:"nOptimal"`
	POptimal float64 `json:"pOptimal"`
	KOptimal float64 `json:"kOptimal"`
	NMin     float64 `json:"nMin"`

	TempOptimal float64 `json:"tempOptimal"`
	TempMin     float64 `json:"tempMin"`
	TempMax     float64 `json:"tempMax"`

	RainfallOptimal float64 `json:"rainfallOptimal"`
	RainfallMin     float64 `json:"rainfallMin"`

	IrrigationBonus map[IrrigationType]float64 `json:"irrigationBonus"`
	Rules           []Rule                     `json:"specialRules"`
}

// Soil returns the multiplier for s, or 1.0 and false when s is not configured.
func (p Profile) Soil(s SoilType) (float64, bool) {
	if v, ok := p.SoilMultiplier[s]; ok {
		return v, true
	}
	return 1.0, false
}

// Irrigation returns the bonus for i, or 1.0 and false when i is not configured.
func (p Profile) Irrigation(i IrrigationType) (float64, bool) {
	if v, ok := p.IrrigationBonus[i]; ok {
		return v, true
	}
	return 1.0, false
}

func (p Profile) Has(r Rule) bool {
	for _, x := range p.Rules {
		if x == r {
			return true
		}
	}
	return false
}

func (p Profile) clone() Profile {
	out := p
	out.SoilMultiplier = make(map[SoilType]float64, len(p.SoilMultiplier))
	for k, v := range p.SoilMultiplier {
		out.SoilMultiplier[k] = v
	}
	out.IrrigationBonus = make(map[IrrigationType]float64, len(p.IrrigationBonus))
	for k, v := range p.IrrigationBonus {
		out.IrrigationBonus[k] = v
	}
	out.Rules = append([]Rule(nil), p.Rules...)
	return out
}

// Key normalizes a caller-supplied identifier ("  Corn " -> "corn").
func Key(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
