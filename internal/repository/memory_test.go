package repository

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GachaGame_Go/internal/domain"
)

func mintOne(t *testing.T, store *MemoryGacha, owner string) uint64 {
	t.Helper()
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	id, err := tx.NextTokenID(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertCharacter(ctx, domain.Character{
		ID:     id,
		Rarity: domain.RarityCommon,
		Power:  100,
		Name:   "Shadow Warrior",
		Owner:  owner,
	}))
	require.NoError(t, tx.AppendToOwner(ctx, owner, id))
	require.NoError(t, tx.Commit(ctx))
	return id
}

func TestMemoryGacha_Initialize(t *testing.T) {
	store := NewMemoryGacha()
	ctx := context.Background()

	require.NoError(t, store.Initialize(ctx, "admin", big.NewInt(10)))

	admin, err := store.GetAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin)

	err = store.Initialize(ctx, "other", big.NewInt(99))
	require.ErrorIs(t, err, domain.ErrAlreadyInitialized)

	admin, err = store.GetAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin, "admin unchanged after failed re-init")
}

func TestMemoryGacha_GetAdmin_Uninitialized(t *testing.T) {
	store := NewMemoryGacha()
	_, err := store.GetAdmin(context.Background())
	require.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestMemoryGacha_RollPriceDefault(t *testing.T) {
	store := NewMemoryGacha()
	ctx := context.Background()

	price, err := store.GetRollPrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRollPrice(), price)

	require.NoError(t, store.SetRollPrice(ctx, big.NewInt(55)))
	price, err = store.GetRollPrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(55), price)
}

func TestMemoryGacha_MintSequence(t *testing.T) {
	store := NewMemoryGacha()
	ctx := context.Background()

	for want := uint64(1); want <= 5; want++ {
		got := mintOne(t, store, "owner-a")
		assert.Equal(t, want, got)
	}

	total, err := store.TotalMinted(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), total)

	owned, err := store.GetUserCharacters(ctx, "owner-a")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, owned)
}

func TestMemoryGacha_DuplicateInsert(t *testing.T) {
	store := NewMemoryGacha()
	ctx := context.Background()
	mintOne(t, store, "owner-a")

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx) //nolint:errcheck

	err = tx.InsertCharacter(ctx, domain.Character{ID: 1, Owner: "owner-b"})
	require.ErrorIs(t, err, domain.ErrDuplicateToken)
}

func TestMemoryGacha_RollbackDiscardsState(t *testing.T) {
	store := NewMemoryGacha()
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)

	id, err := tx.NextTokenID(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertCharacter(ctx, domain.Character{ID: id, Owner: "owner-a"}))
	require.NoError(t, tx.AppendToOwner(ctx, "owner-a", id))
	require.NoError(t, tx.Rollback(ctx))

	// Nothing committed: counter, table and owner index untouched.
	total, err := store.TotalMinted(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	ch, err := store.GetCharacter(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, ch)

	owned, err := store.GetUserCharacters(ctx, "owner-a")
	require.NoError(t, err)
	assert.Empty(t, owned)

	// The discarded id is reissued by the next transaction.
	assert.Equal(t, uint64(1), mintOne(t, store, "owner-a"))
}

func TestMemoryGacha_CrossInvariants(t *testing.T) {
	store := NewMemoryGacha()
	ctx := context.Background()

	owners := []string{"owner-a", "owner-b", "owner-a", "owner-c", "owner-b"}
	for _, o := range owners {
		mintOne(t, store, o)
	}

	total, err := store.TotalMinted(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(len(owners)), total)

	// Every id in an owner sequence exists in the table and belongs to
	// exactly one owner.
	seen := make(map[uint64]string)
	for _, o := range []string{"owner-a", "owner-b", "owner-c"} {
		owned, err := store.GetUserCharacters(ctx, o)
		require.NoError(t, err)
		for _, id := range owned {
			ch, err := store.GetCharacter(ctx, id)
			require.NoError(t, err)
			require.NotNil(t, ch)
			assert.Equal(t, o, ch.Owner)

			prev, dup := seen[id]
			assert.False(t, dup, "id %d in sequences of %s and %s", id, prev, o)
			seen[id] = o
		}
	}
	assert.Len(t, seen, len(owners))
}

func TestMemoryGacha_GetUserCharacters_Isolated(t *testing.T) {
	store := NewMemoryGacha()
	ctx := context.Background()
	mintOne(t, store, "owner-a")

	owned, err := store.GetUserCharacters(ctx, "owner-a")
	require.NoError(t, err)

	// Mutating the returned slice must not corrupt the ledger.
	owned[0] = 999
	again, err := store.GetUserCharacters(ctx, "owner-a")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, again)
}
