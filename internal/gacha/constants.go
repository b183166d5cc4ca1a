package gacha

import "time"

// ============================================================================
// Rarity Bands
// ============================================================================

// RarityBandModulus is the size of the normalized entropy range the bands
// partition. The bands are contiguous and sum to exactly this value.
const RarityBandModulus = 10000

// LegendaryBandMax is the exclusive upper bound of the Legendary band (1.00%).
const LegendaryBandMax = 100

// EpicBandMax is the exclusive upper bound of the Epic band (5.00%, width 500).
const EpicBandMax = 600

// RareBandMax is the exclusive upper bound of the Rare band (20.00%, width 2000).
const RareBandMax = 2600

// Everything from RareBandMax up to RarityBandModulus is Common (74.00%).
// These boundaries are the published drop-rate contract; changing any of them
// is a breaking change, not a tuning knob.

// ============================================================================
// Power Ranges
// ============================================================================

// Power is derived as base + entropy % (span + 1), giving the inclusive
// ranges documented next to each pair.
const (
	PowerBaseLegendary = 800 // 800-1000
	PowerSpanLegendary = 200

	PowerBaseEpic = 500 // 500-800
	PowerSpanEpic = 300

	PowerBaseRare = 200 // 200-500
	PowerSpanRare = 300

	PowerBaseCommon = 50 // 50-200
	PowerSpanCommon = 150
)

// ============================================================================
// Name Pools
// ============================================================================

// NamesPerRarity is the size of each rarity's name pool.
const NamesPerRarity = 4

// ============================================================================
// Character Cache
// ============================================================================

// CharacterCacheSize is the maximum number of characters held in the read cache.
const CharacterCacheSize = 1024

// CharacterCacheTTL bounds the lifetime of cached entries. Characters are
// immutable after mint, so the TTL only bounds memory, not staleness.
const CharacterCacheTTL = 30 * time.Minute

// ============================================================================
// Error Messages
// ============================================================================

// Error context messages for wrapped errors during roll execution
const (
	ErrContextFailedToBeginRoll     = "failed to begin roll transaction"
	ErrContextFailedToAssignToken   = "failed to assign token id"
	ErrContextFailedToStoreRoll     = "failed to store rolled character"
	ErrContextFailedToIndexOwner    = "failed to index character owner"
	ErrContextFailedToCommitRoll    = "failed to commit roll"
	ErrContextFailedToReadPrice     = "failed to read roll price"
	ErrContextFailedToReadAdmin     = "failed to read admin"
	ErrContextFailedToInitialize    = "failed to initialize contract state"
	ErrContextFailedToUpdatePrice   = "failed to update roll price"
	ErrContextFailedToReadCharacter = "failed to read character"
	ErrContextFailedToReadOwned     = "failed to read owned characters"
	ErrContextFailedToReadTotal     = "failed to read total minted"
)

// Log messages
const (
	LogMsgCharacterRolled     = "Character rolled"
	LogMsgRollEventFailed     = "Failed to publish roll event"
	LogMsgContractInitialized = "Contract initialized"
	LogMsgRollPriceUpdated    = "Roll price updated"
)
