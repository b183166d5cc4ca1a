package repository

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/osse101/GachaGame_Go/internal/domain"
)

// MemoryGacha is an in-memory Gacha implementation. It backs the service
// tests and is a faithful model of the ledger invariants: write-once
// characters, append-only owner sequences and a counter that never repeats.
//
// A transaction holds the store's lock from BeginTx until Commit or Rollback,
// so two logically concurrent rolls are serialized and can never observe the
// same counter value.
type MemoryGacha struct {
	mu          sync.Mutex
	initialized bool
	admin       string
	rollPrice   *big.Int // nil until configured
	counter     uint64   // next token id to assign
	characters  map[uint64]domain.Character
	owners      map[string][]uint64
}

// NewMemoryGacha creates an empty in-memory ledger.
func NewMemoryGacha() *MemoryGacha {
	return &MemoryGacha{
		counter:    1,
		characters: make(map[uint64]domain.Character),
		owners:     make(map[string][]uint64),
	}
}

// Initialize sets admin, price and counter exactly once.
func (m *MemoryGacha) Initialize(ctx context.Context, admin string, rollPrice *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return domain.ErrAlreadyInitialized
	}
	m.initialized = true
	m.admin = admin
	m.rollPrice = new(big.Int).Set(rollPrice)
	m.counter = 1
	return nil
}

// GetAdmin returns the admin identity set at initialization.
func (m *MemoryGacha) GetAdmin(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return "", domain.ErrNotInitialized
	}
	return m.admin, nil
}

// GetRollPrice returns the configured price or the default when unset.
func (m *MemoryGacha) GetRollPrice(ctx context.Context) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollPrice == nil {
		return domain.DefaultRollPrice(), nil
	}
	return new(big.Int).Set(m.rollPrice), nil
}

// SetRollPrice overwrites the stored price.
func (m *MemoryGacha) SetRollPrice(ctx context.Context, price *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollPrice = new(big.Int).Set(price)
	return nil
}

// GetCharacter returns the character for a token id, or nil when absent.
func (m *MemoryGacha) GetCharacter(ctx context.Context, tokenID uint64) (*domain.Character, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, ok := m.characters[tokenID]
	if !ok {
		return nil, nil
	}
	return &ch, nil
}

// GetUserCharacters returns the owner's token ids in mint order.
func (m *MemoryGacha) GetUserCharacters(ctx context.Context, owner string) ([]uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	owned := m.owners[owner]
	out := make([]uint64, len(owned))
	copy(out, owned)
	return out, nil
}

// TotalMinted returns counter - 1.
func (m *MemoryGacha) TotalMinted(ctx context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.counter - 1, nil
}

// BeginTx acquires the store lock and returns a transaction that stages
// mutations until Commit.
func (m *MemoryGacha) BeginTx(ctx context.Context) (GachaTx, error) {
	m.mu.Lock()
	return &memoryTx{store: m}, nil
}

type ownerAppend struct {
	owner   string
	tokenID uint64
}

// memoryTx stages mutations against a locked MemoryGacha. Commit publishes
// the staged state; Rollback discards it. Either way the store lock is
// released exactly once.
type memoryTx struct {
	store   *MemoryGacha
	done    bool
	counter uint64 // ids consumed by NextTokenID
	staged  []domain.Character
	appends []ownerAppend
}

func (t *memoryTx) NextTokenID(ctx context.Context) (uint64, error) {
	id := t.store.counter + t.counter
	t.counter++
	return id, nil
}

func (t *memoryTx) InsertCharacter(ctx context.Context, ch domain.Character) error {
	if _, exists := t.store.characters[ch.ID]; exists {
		return fmt.Errorf("%w: %d", domain.ErrDuplicateToken, ch.ID)
	}
	for _, staged := range t.staged {
		if staged.ID == ch.ID {
			return fmt.Errorf("%w: %d", domain.ErrDuplicateToken, ch.ID)
		}
	}
	t.staged = append(t.staged, ch)
	return nil
}

func (t *memoryTx) AppendToOwner(ctx context.Context, owner string, tokenID uint64) error {
	t.appends = append(t.appends, ownerAppend{owner: owner, tokenID: tokenID})
	return nil
}

func (t *memoryTx) Commit(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true

	t.store.counter += t.counter
	for _, ch := range t.staged {
		t.store.characters[ch.ID] = ch
	}
	for _, a := range t.appends {
		t.store.owners[a.owner] = append(t.store.owners[a.owner], a.tokenID)
	}
	t.store.mu.Unlock()
	return nil
}

func (t *memoryTx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}
