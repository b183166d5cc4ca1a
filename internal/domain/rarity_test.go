package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRarity_String(t *testing.T) {
	assert.Equal(t, "common", RarityCommon.String())
	assert.Equal(t, "rare", RarityRare.String())
	assert.Equal(t, "epic", RarityEpic.String())
	assert.Equal(t, "legendary", RarityLegendary.String())
	assert.Equal(t, "rarity(7)", Rarity(7).String())
}

func TestRarity_Valid(t *testing.T) {
	for _, r := range AllRarities {
		assert.True(t, r.Valid(), "expected %s to be valid", r)
	}
	assert.False(t, Rarity(-1).Valid())
	assert.False(t, Rarity(4).Valid())
}
