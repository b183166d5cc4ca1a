package domain

import "math/big"

// Character represents a minted collectible. Every field is assigned exactly
// once at roll time and never mutated; there is no transfer or burn operation.
type Character struct {
	ID       uint64 `json:"id" db:"token_id"`
	Rarity   Rarity `json:"rarity" db:"rarity"`
	Power    uint32 `json:"power" db:"power"`
	Name     string `json:"name" db:"name"`
	Owner    string `json:"owner" db:"owner"`
	RolledAt uint64 `json:"rolled_at" db:"rolled_at"` // unix seconds at mint time
}

// DefaultRollPrice is the roll price used when the admin never configured one,
// in the smallest currency unit (10_000_000 stroops = 1 XLM upstream).
func DefaultRollPrice() *big.Int {
	return big.NewInt(10_000_000)
}
