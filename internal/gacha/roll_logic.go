package gacha

import (
	"fmt"

	"github.com/osse101/GachaGame_Go/internal/domain"
)

// characterNames is one logical table of sixteen names, four per rarity, at
// offsets 0 (Common), 4 (Rare), 8 (Epic) and 12 (Legendary). The table is
// reproduced verbatim from the on-chain contract; any prior minted output
// depends on these exact strings and positions.
var characterNames = [16]string{
	// Common (0-3)
	"Shadow Warrior",
	"Fire Mage",
	"Ice Assassin",
	"Thunder Knight",
	// Rare (4-7)
	"Rare Shadow Mage",
	"Rare Fire Warrior",
	"Rare Ice Knight",
	"Rare Thunder Assassin",
	// Epic (8-11)
	"Epic Shadow Knight",
	"Epic Fire Assassin",
	"Epic Ice Mage",
	"Epic Thunder Warrior",
	// Legendary (12-15)
	"Legendary Shadow Assassin",
	"Legendary Fire Knight",
	"Legendary Ice Warrior",
	"Legendary Thunder Mage",
}

// rarityFor maps an entropy value to a rarity tier by reducing it into the
// band range and applying the bands rarest-first. First match wins; the bands
// are contiguous and exhaustive so exactly one tier applies.
func rarityFor(e uint32) domain.Rarity {
	r := e % RarityBandModulus
	switch {
	case r < LegendaryBandMax:
		return domain.RarityLegendary
	case r < EpicBandMax:
		return domain.RarityEpic
	case r < RareBandMax:
		return domain.RarityRare
	default:
		return domain.RarityCommon
	}
}

// powerFor derives a power score in the rarity's inclusive range.
func powerFor(rarity domain.Rarity, e uint32) uint32 {
	switch rarity {
	case domain.RarityLegendary:
		return PowerBaseLegendary + e%(PowerSpanLegendary+1)
	case domain.RarityEpic:
		return PowerBaseEpic + e%(PowerSpanEpic+1)
	case domain.RarityRare:
		return PowerBaseRare + e%(PowerSpanRare+1)
	case domain.RarityCommon:
		return PowerBaseCommon + e%(PowerSpanCommon+1)
	}
	panic(fmt.Sprintf("powerFor: rarity out of range: %d", int(rarity)))
}

// nameFor picks a display name from the rarity's pool.
func nameFor(rarity domain.Rarity, e uint32) string {
	return characterNames[nameOffset(rarity)+int(e%NamesPerRarity)]
}

// nameOffset returns the rarity's offset into the name table. The switch is
// exhaustive on purpose: an out-of-band rarity must never be absorbed into a
// default pool.
func nameOffset(rarity domain.Rarity) int {
	switch rarity {
	case domain.RarityCommon:
		return 0
	case domain.RarityRare:
		return NamesPerRarity
	case domain.RarityEpic:
		return 2 * NamesPerRarity
	case domain.RarityLegendary:
		return 3 * NamesPerRarity
	}
	panic(fmt.Sprintf("nameOffset: rarity out of range: %d", int(rarity)))
}
