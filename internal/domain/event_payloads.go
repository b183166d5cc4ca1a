package domain

// CharacterRolledPayload is the event payload for character.rolled events.
// Rarity is carried as its integer form (0-3) for downstream consumers that
// index drop tables by tier.
type CharacterRolledPayload struct {
	TokenID   uint64 `json:"token_id"`
	UserID    string `json:"user_id"`
	Rarity    int    `json:"rarity"`
	Power     uint32 `json:"power"`
	Timestamp int64  `json:"timestamp"`
}

// ContractInitializedPayload is the event payload for contract.initialized events
type ContractInitializedPayload struct {
	AdminID   string `json:"admin_id"`
	RollPrice string `json:"roll_price"`
	Timestamp int64  `json:"timestamp"`
}

// RollPriceChangedPayload is the event payload for price.changed events
type RollPriceChangedPayload struct {
	AdminID   string `json:"admin_id"`
	NewPrice  string `json:"new_price"`
	Timestamp int64  `json:"timestamp"`
}
