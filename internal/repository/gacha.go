package repository

import (
	"context"
	"math/big"

	"github.com/osse101/GachaGame_Go/internal/domain"
)

// Gacha defines the interface for gacha ledger persistence: the token
// counter, the write-once character table, the append-only owner index and
// the contract configuration scalars.
//
// Reads return absent values (nil character, empty slice) rather than errors
// when a key is unknown. Mutations that span more than one field go through a
// GachaTx so a roll commits all-or-nothing.
type Gacha interface {
	// Initialize sets the admin, roll price and counter exactly once per
	// ledger lifetime. Returns domain.ErrAlreadyInitialized on a second call,
	// leaving existing state untouched.
	Initialize(ctx context.Context, admin string, rollPrice *big.Int) error

	// GetAdmin returns the configured admin identity, or
	// domain.ErrNotInitialized when Initialize has never run.
	GetAdmin(ctx context.Context) (string, error)

	// GetRollPrice returns the configured price, or domain.DefaultRollPrice()
	// when no price was ever stored.
	GetRollPrice(ctx context.Context) (*big.Int, error)

	// SetRollPrice overwrites the stored price. Authorization is the
	// service's concern, not the store's.
	SetRollPrice(ctx context.Context, price *big.Int) error

	// GetCharacter returns the character for a token id, or nil when absent.
	GetCharacter(ctx context.Context, tokenID uint64) (*domain.Character, error)

	// GetUserCharacters returns the owner's token ids in mint order. An owner
	// who never rolled gets an empty slice, not an error.
	GetUserCharacters(ctx context.Context, owner string) ([]uint64, error)

	// TotalMinted returns counter - 1: the number of characters ever rolled.
	TotalMinted(ctx context.Context) (uint64, error)

	BeginTx(ctx context.Context) (GachaTx, error)
}

// GachaTx is the transactional surface a single roll executes against. Every
// method either takes effect at Commit or not at all; two concurrent
// transactions never observe the same counter value.
type GachaTx interface {
	// NextTokenID consumes the current counter value and advances it by one.
	NextTokenID(ctx context.Context) (uint64, error)

	// InsertCharacter is a write-once insert keyed by the character's ID.
	// Returns domain.ErrDuplicateToken if the id already exists - an
	// internal-consistency defect under correct counter usage.
	InsertCharacter(ctx context.Context, ch domain.Character) error

	// AppendToOwner appends the token id to the owner's sequence, creating
	// the sequence if absent. Always appends; a roll calls it exactly once.
	AppendToOwner(ctx context.Context, owner string, tokenID uint64) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
