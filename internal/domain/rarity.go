package domain

import "fmt"

// Rarity represents the quality tier of a rolled character.
// The numeric values are part of the wire contract (events and persisted rows
// store the integer form) and must not be reordered.
type Rarity int

const (
	RarityCommon    Rarity = 0
	RarityRare      Rarity = 1
	RarityEpic      Rarity = 2
	RarityLegendary Rarity = 3
)

// AllRarities lists every tier in ascending order of desirability.
var AllRarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

// String returns the display name of the rarity tier.
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	}
	return fmt.Sprintf("rarity(%d)", int(r))
}

// Valid reports whether the rarity is one of the four defined tiers.
// Out-of-band values must never be absorbed silently; callers decode
// persisted rows through this check.
func (r Rarity) Valid() bool {
	return r >= RarityCommon && r <= RarityLegendary
}
