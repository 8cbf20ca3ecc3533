package crop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileForKnownCrops(t *testing.T) {
	tbl := Default()
	cases := map[string]float64{
		"corn": 10.2, "wheat": 3.8, "soybean": 3.2, "rice": 7.5, "cotton": 2.1,
		"melon": 35.0, "pumpkin": 22.0, "cilantro": 1.8,
	}
	for name, base := range cases {
		p, ok := tbl.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, base, p.BaseYield, name)
		assert.Equal(t, name, p.Name)
	}
	assert.Equal(t, len(cases), tbl.Len())
}

func TestRowCropsShareDefaultShape(t *testing.T) {
	tbl := Default()
	def := tbl.Fallback()
	for _, name := range []string{"corn", "wheat", "soybean", "rice", "cotton"} {
		p := tbl.ProfileFor(name)
		assert.Equal(t, ClassDefault, p.Class)
		assert.Equal(t, def.SoilMultiplier, p.SoilMultiplier)
		assert.Equal(t, def.IrrigationBonus, p.IrrigationBonus)
		assert.Equal(t, 6.5, p.PHOptimal)
		assert.Equal(t, []float64{160, 65, 130}, []float64{p.NOptimal, p.POptimal, p.KOptimal})
		assert.Empty(t, p.Rules)
	}
}

func TestUnknownCropFallsBack(t *testing.T) {
	p, ok := Default().Lookup("barley")
	assert.False(t, ok)
	assert.Equal(t, DefaultKey, p.Name)
	assert.Equal(t, 8.0, p.BaseYield)
	assert.Equal(t, 24.0, p.TempOptimal)
	assert.Equal(t, 750.0, p.RainfallOptimal)
	assert.Equal(t, 1.2, p.IrrigationBonus[IrrigationDrip])
	assert.Equal(t, 0.85, p.SoilMultiplier[SoilSandy])
}

func TestLookupNormalizesKey(t *testing.T) {
	p, ok := Default().Lookup("  Melon ")
	require.True(t, ok)
	assert.Equal(t, ClassMelon, p.Class)
}

func TestSpecialRules(t *testing.T) {
	tbl := Default()
	assert.True(t, tbl.ProfileFor("cilantro").Has(RuleHeatStressSensitive))
	assert.True(t, tbl.ProfileFor("melon").Has(RuleDrainageSensitive))
	assert.True(t, tbl.ProfileFor("pumpkin").Has(RuleDrainageSensitive))
	assert.False(t, tbl.ProfileFor("corn").Has(RuleDrainageSensitive))
}

func TestSoilAndIrrigationFallback(t *testing.T) {
	p := Default().ProfileFor("melon")

	v, ok := p.Soil("rocky")
	assert.False(t, ok)
	assert.Equal(t, 1.0, v)

	v, ok = p.Soil(SoilClay)
	assert.True(t, ok)
	assert.Equal(t, 0.8, v)

	v, ok = p.Irrigation("pivot")
	assert.False(t, ok)
	assert.Equal(t, 1.0, v)

	v, ok = p.Irrigation(IrrigationFlood)
	assert.True(t, ok)
	assert.Equal(t, 0.95, v)
}

func TestParseCategories(t *testing.T) {
	s, ok := ParseSoil(" Clay")
	assert.True(t, ok)
	assert.Equal(t, SoilClay, s)
	_, ok = ParseSoil("rocky")
	assert.False(t, ok)

	i, ok := ParseIrrigation("DRIP")
	assert.True(t, ok)
	assert.Equal(t, IrrigationDrip, i)
	_, ok = ParseIrrigation("")
	assert.False(t, ok)
}

func TestCropsSorted(t *testing.T) {
	assert.Equal(t,
		[]string{"cilantro", "corn", "cotton", "melon", "pumpkin", "rice", "soybean", "wheat"},
		Default().Crops())
}

func TestReturnedProfilesAreCopies(t *testing.T) {
	tbl := Default()

	p := tbl.ProfileFor("corn")
	p.SoilMultiplier[SoilLoam] = 0
	p.IrrigationBonus[IrrigationDrip] = 0
	p.BaseYield = 1

	m := tbl.ProfileFor("melon")
	m.Rules[0] = RuleHeatStressSensitive

	fb := tbl.Fallback()
	fb.SoilMultiplier[SoilClay] = 9
	unknown, _ := tbl.Lookup("barley")
	unknown.IrrigationBonus[IrrigationNone] = 9

	again := Default().ProfileFor("corn")
	loam, _ := again.Soil(SoilLoam)
	drip, _ := again.Irrigation(IrrigationDrip)
	assert.Equal(t, 1.0, loam)
	assert.Equal(t, 1.2, drip)
	assert.Equal(t, 10.2, again.BaseYield)
	assert.Equal(t, []Rule{RuleDrainageSensitive}, Default().ProfileFor("melon").Rules)

	clay, _ := Default().Fallback().Soil(SoilClay)
	assert.Equal(t, 0.95, clay)
	none, _ := Default().ProfileFor("barley").Irrigation(IrrigationNone)
	assert.Equal(t, 1.0, none)
}
