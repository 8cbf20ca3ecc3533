package repositoryImp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cropyield/database"
	"cropyield/entities"
	"cropyield/pkg/yield"
)

func TestFieldRoundTrip(t *testing.T) {
	db, err := database.OpenSQLite("file::memory:")
	require.NoError(t, err)
	r := New(db)

	o := yield.DefaultObservation()
	o.CropType = "pumpkin"
	o.SoilPH = yield.Float(6.1)
	f := &entities.Field{Name: "east", FieldObservation: o}
	require.NoError(t, r.Create(f))
	require.NotZero(t, f.FieldID)
	require.NoError(t, r.Create(&entities.Field{Name: "west", FieldObservation: yield.DefaultObservation()}))

	got, err := r.FindByID(f.FieldID)
	require.NoError(t, err)
	assert.Equal(t, "east", got.Name)
	assert.Equal(t, o, got.FieldObservation)

	_, err = r.FindByID(999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	list, err := r.List(10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "west", list[0].Name)
}
