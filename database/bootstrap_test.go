package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropyield/entities"
)

func TestOpenSQLiteMigrates(t *testing.T) {
	db, err := OpenSQLite("file::memory:")
	require.NoError(t, err)

	for _, m := range []any{&entities.Field{}, &entities.PredictionLog{}, &entities.KBDocument{}, &entities.KBChunk{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.True(t, db.Migrator().HasColumn(&entities.Field{}, "crop_type"))
}
