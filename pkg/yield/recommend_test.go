package yield

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cropyield/pkg/crop"
)

func TestRecommendAffirmations(t *testing.T) {
	tbl := crop.Default()
	cases := map[string]string{
		"corn":     "Current conditions are optimal for maximum yield",
		"barley":   "Current conditions are optimal for maximum yield",
		"melon":    "Conditions are good for melons - ensure consistent drip irrigation and warm temperatures",
		"pumpkin":  "Conditions are optimal for pumpkins - maintain consistent moisture and monitor for pests",
		"cilantro": "Conditions are excellent for cilantro - harvest before bolting in warm weather",
	}
	for name, want := range cases {
		assert.Equal(t, []string{want}, Recommend(tbl.ProfileFor(name), nil), name)
	}
}

func TestRecommendPHDirection(t *testing.T) {
	tbl := crop.Default()
	low := []LimitingFactor{{Name: FactorSoilPH, Impact: ImpactHigh, Value: 5.0}}
	high := []LimitingFactor{{Name: FactorSoilPH, Impact: ImpactHigh, Value: 8.0}}

	assert.Contains(t, Recommend(tbl.ProfileFor("corn"), low)[0], "Apply lime")
	assert.Contains(t, Recommend(tbl.ProfileFor("corn"), high)[0], "Apply sulfur")
	assert.Equal(t, "Apply lime to increase soil pH to 6.3-7.2 for optimal melon growth",
		Recommend(tbl.ProfileFor("melon"), low)[0])
	assert.Equal(t, "Apply sulfur to decrease soil pH to 5.8-6.8 range for cilantro",
		Recommend(tbl.ProfileFor("cilantro"), high)[0])
}

func TestRecommendOnePerFactorInOrder(t *testing.T) {
	p := crop.Default().ProfileFor("cilantro")
	fs := []LimitingFactor{
		{Name: FactorRainfall, Value: 100.0},
		{Name: FactorTemperature, Value: 30.0},
		{Name: FactorHeatStress, Value: 30.0},
	}
	assert.Equal(t, []string{
		"Provide gentle, consistent irrigation - cilantro needs 350-500mm annually",
		"Cilantro prefers cool weather (12-25°C) - plant in fall/winter or provide shade",
		"Plant cilantro in partial shade or during cooler months to prevent bolting",
	}, Recommend(p, fs))
}

func TestRecommendDrainageMentionsRaisedBeds(t *testing.T) {
	for _, name := range []string{"melon", "pumpkin", "corn"} {
		recs := Recommend(crop.Default().ProfileFor(name), []LimitingFactor{{Name: FactorSoilDrainage, Value: poorDrainageNote}})
		assert.Len(t, recs, 1)
		assert.Contains(t, recs[0], "raised beds")
		assert.Contains(t, recs[0], "organic matter")
	}
}

func TestRecommendClassFallsBackToDefault(t *testing.T) {
	p := crop.Default().ProfileFor("corn")
	p.Class = "orchard"
	recs := Recommend(p, []LimitingFactor{{Name: FactorNitrogen, Value: 10.0}})
	assert.Equal(t, []string{"Increase nitrogen fertilizer application to 140-160 kg/ha"}, recs)
	assert.Equal(t, []string{"Current conditions are optimal for maximum yield"}, Recommend(p, nil))
}

func TestAdviceTableCoversEveryFactor(t *testing.T) {
	cases := []struct {
		f FactorName
		v variant
	}{
		{FactorSoilPH, variantLow}, {FactorSoilPH, variantHigh},
		{FactorNitrogen, variantAny}, {FactorRainfall, variantAny}, {FactorTemperature, variantAny},
		{FactorHeatStress, variantAny}, {FactorSoilDrainage, variantAny},
	}
	for _, tc := range cases {
		_, ok := advice[adviceKey{tc.f, crop.ClassDefault, tc.v}]
		assert.True(t, ok, "default row for %s/%s", tc.f, tc.v)
	}
}

func TestRecommendUnknownFactorUsesGenericRow(t *testing.T) {
	p := crop.Default().ProfileFor("melon")
	recs := Recommend(p, []LimitingFactor{{Name: "Salinity", Value: 4.0}})
	assert.Equal(t, []string{advice[adviceKey{"", crop.ClassDefault, variantAny}]}, recs)
	assert.NotEmpty(t, recs[0])
}
