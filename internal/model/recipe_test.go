package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBStringArray(t *testing.T) {
	t.Run("empty value", func(t *testing.T) {
		v, err := JSONBStringArray(nil).Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("scan bytes and strings", func(t *testing.T) {
		var a JSONBStringArray
		require.NoError(t, a.Scan([]byte(`["Onion","Garlic"]`)))
		assert.Equal(t, JSONBStringArray{"Onion", "Garlic"}, a)

		require.NoError(t, a.Scan(`["Paneer"]`))
		assert.Equal(t, JSONBStringArray{"Paneer"}, a)
	})

	t.Run("scan nil", func(t *testing.T) {
		a := JSONBStringArray{"stale"}
		require.NoError(t, a.Scan(nil))
		assert.Empty(t, a)
	})

	t.Run("scan unsupported type", func(t *testing.T) {
		var a JSONBStringArray
		assert.Error(t, a.Scan(42))
	})
}

func TestRecipeBeforeCreate(t *testing.T) {
	r := &Recipe{Name: "Dal"}
	require.NoError(t, r.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, r.ID)

	id := uuid.New()
	r = &Recipe{ID: id}
	require.NoError(t, r.BeforeCreate(nil))
	assert.Equal(t, id, r.ID)
}
