package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDietary(t *testing.T) {
	assert.Equal(t, "vegetarian", NormalizeDietary("  Vegetarian "))
	assert.Equal(t, "non-vegetarian", NormalizeDietary("Non-Vegetarian"))
	assert.Equal(t, "", NormalizeDietary("   "))
}

func TestIsNoDietaryFilter(t *testing.T) {
	for _, v := range []string{"", " ", "None", "none", " NONE "} {
		assert.True(t, IsNoDietaryFilter(v), v)
	}
	for _, v := range []string{"Vegetarian", "vegan", "Non-Vegetarian"} {
		assert.False(t, IsNoDietaryFilter(v), v)
	}
}

func TestIsKnownDietary(t *testing.T) {
	assert.True(t, IsKnownDietary("Vegetarian"))
	assert.True(t, IsKnownDietary("NON-VEGETARIAN"))
	assert.True(t, IsKnownDietary("None"))
	assert.False(t, IsKnownDietary("pescatarian"))
}
