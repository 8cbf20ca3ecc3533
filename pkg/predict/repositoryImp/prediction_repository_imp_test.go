package repositoryImp

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropyield/database"
	"cropyield/entities"
	"cropyield/pkg/yield"
)

func TestAppendAndRecent(t *testing.T) {
	db, err := database.OpenSQLite("file::memory:")
	require.NoError(t, err)
	r := New(db)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fid := uint(3)
	for i := range 5 {
		l := &entities.PredictionLog{
			PredictionID:    fmt.Sprintf("p%d", i),
			CropType:        "corn",
			Profile:         "corn",
			YieldEstimate:   10 + float64(i),
			Observation:     yield.DefaultObservation(),
			Factors:         []yield.LimitingFactor{{Name: yield.FactorNitrogen, Impact: yield.ImpactMedium, Value: 90.0}},
			Recommendations: []string{"more nitrogen"},
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		}
		if i == 4 {
			l.FieldID = &fid
		}
		require.NoError(t, r.Append(ctx, l))
	}

	got, err := r.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p4", got[0].PredictionID)
	assert.Equal(t, "p3", got[1].PredictionID)

	require.NotNil(t, got[0].FieldID)
	assert.Equal(t, fid, *got[0].FieldID)
	assert.Equal(t, yield.DefaultObservation(), got[0].Observation)
	require.Len(t, got[0].Factors, 1)
	assert.Equal(t, yield.FactorNitrogen, got[0].Factors[0].Name)
	assert.Equal(t, 90.0, got[0].Factors[0].Value)
	assert.Equal(t, []string{"more nitrogen"}, got[0].Recommendations)

	all, err := r.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestAppendRejectsDuplicateID(t *testing.T) {
	db, err := database.OpenSQLite("file::memory:")
	require.NoError(t, err)
	r := New(db)

	require.NoError(t, r.Append(context.Background(), &entities.PredictionLog{PredictionID: "dup"}))
	assert.Error(t, r.Append(context.Background(), &entities.PredictionLog{PredictionID: "dup"}))
}
