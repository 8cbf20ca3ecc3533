package crop

import (
	"sort"
	"sync"
)

// DefaultKey names the fallback profile used for unknown crops.
const DefaultKey = "default"

var generic = Profile{
	Name:           DefaultKey,
	Class:          ClassDefault,
	BaseYield:      8.0,
	SoilMultiplier: map[SoilType]float64{SoilClay: 0.95, SoilSandy: 0.85, SoilLoam: 1.0, SoilSilt: 0.92},
	PHOptimal:      6.5, PHMin: 6.0, PHMax: 7.5,
	NOptimal: 160, POptimal: 65, KOptimal: 130, NMin: 120,
	TempOptimal: 24, TempMin: 18, TempMax: 30,
	RainfallOptimal: 750, RainfallMin: 600,
	IrrigationBonus: map[IrrigationType]float64{
		IrrigationNone: 1.0, IrrigationFlood: 1.1, IrrigationSprinkler: 1.15, IrrigationDrip: 1.2,
	},
}

func rowCrop(name string, base float64) Profile {
	p := generic.clone()
	p.Name = name
	p.BaseYield = base
	return p
}

func builtin() []Profile {
	return []Profile{
		rowCrop("corn", 10.2),
		rowCrop("wheat", 3.8),
		rowCrop("soybean", 3.2),
		rowCrop("rice", 7.5),
		rowCrop("cotton", 2.1),
		{
			Name:           "melon",
			Class:          ClassMelon,
			BaseYield:      35.0,
			SoilMultiplier: map[SoilType]float64{SoilClay: 0.8, SoilSandy: 1.05, SoilLoam: 1.0, SoilSilt: 0.92},
			PHOptimal:      6.8, PHMin: 6.3, PHMax: 7.2,
			NOptimal: 120, POptimal: 80, KOptimal: 200, NMin: 100,
			TempOptimal: 27, TempMin: 22, TempMax: 35,
			RainfallOptimal: 600, RainfallMin: 400,
			IrrigationBonus: map[IrrigationType]float64{
				IrrigationNone: 1.0, IrrigationFlood: 0.95, IrrigationSprinkler: 1.15, IrrigationDrip: 1.25,
			},
			Rules: []Rule{RuleDrainageSensitive},
		},
		{
			Name:           "pumpkin",
			Class:          ClassPumpkin,
			BaseYield:      22.0,
			SoilMultiplier: map[SoilType]float64{SoilClay: 0.8, SoilSandy: 1.05, SoilLoam: 1.0, SoilSilt: 0.92},
			PHOptimal:      6.5, PHMin: 6.0, PHMax: 7.0,
			NOptimal: 140, POptimal: 90, KOptimal: 180, NMin: 120,
			TempOptimal: 24, TempMin: 18, TempMax: 32,
			RainfallOptimal: 800, RainfallMin: 650,
			IrrigationBonus: map[IrrigationType]float64{
				IrrigationNone: 1.0, IrrigationFlood: 1.1, IrrigationSprinkler: 1.18, IrrigationDrip: 1.2,
			},
			Rules: []Rule{RuleDrainageSensitive},
		},
		{
			Name:           "cilantro",
			Class:          ClassCilantro,
			BaseYield:      1.8,
			SoilMultiplier: map[SoilType]float64{SoilClay: 0.98, SoilSandy: 0.9, SoilLoam: 1.0, SoilSilt: 0.92},
			PHOptimal:      6.2, PHMin: 5.8, PHMax: 6.8,
			NOptimal: 100, POptimal: 40, KOptimal: 80, NMin: 80,
			TempOptimal: 18, TempMin: 12, TempMax: 25,
			RainfallOptimal: 500, RainfallMin: 350,
			IrrigationBonus: map[IrrigationType]float64{
				IrrigationNone: 1.0, IrrigationFlood: 0.9, IrrigationSprinkler: 1.12, IrrigationDrip: 1.15,
			},
			Rules: []Rule{RuleHeatStressSensitive},
		},
	}
}

// Table is the crop-keyed profile registry. It is read-only once built and
// safe for concurrent use.
type Table struct {
	profiles map[string]Profile
	fallback Profile
}

func newTable(ps []Profile, fallback Profile) *Table {
	t := &Table{profiles: make(map[string]Profile, len(ps)), fallback: fallback}
	for _, p := range ps {
		t.profiles[Key(p.Name)] = p
	}
	return t
}

var defaultTable = sync.OnceValue(func() *Table { return newTable(builtin(), generic.clone()) })

// Default returns the built-in table.
func Default() *Table { return defaultTable() }

// ProfileFor never fails: unknown crops resolve to the default profile.
func (t *Table) ProfileFor(cropType string) Profile {
	p, _ := t.Lookup(cropType)
	return p
}

// Lookup reports whether cropType matched a configured profile exactly. The
// returned profile is a copy; editing it does not touch the table.
func (t *Table) Lookup(cropType string) (Profile, bool) {
	if p, ok := t.profiles[Key(cropType)]; ok {
		return p.clone(), true
	}
	return t.fallback.clone(), false
}

func (t *Table) Fallback() Profile { return t.fallback.clone() }

// Crops lists configured crop keys in alphabetical order.
func (t *Table) Crops() []string {
	out := make([]string, 0, len(t.profiles))
	for k := range t.profiles {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (t *Table) Len() int { return len(t.profiles) }

// ParseSoil maps a raw soil string to a known SoilType.
func ParseSoil(s string) (SoilType, bool) {
	st := SoilType(Key(s))
	switch st {
	case SoilClay, SoilSandy, SoilLoam, SoilSilt:
		return st, true
	}
	return st, false
}

// ParseIrrigation maps a raw irrigation string to a known IrrigationType.
func ParseIrrigation(s string) (IrrigationType, bool) {
	it := IrrigationType(Key(s))
	switch it {
	case IrrigationNone, IrrigationFlood, IrrigationSprinkler, IrrigationDrip:
		return it, true
	}
	return it, false
}
