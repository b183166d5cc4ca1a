package postgres

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/GachaGame_Go/internal/database"
	"github.com/osse101/GachaGame_Go/internal/domain"
)

func TestGachaRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		return
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(connStr, 10, 1*time.Minute, 5*time.Minute)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := applyMigrations(ctx, pool, "../../../migrations"); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	repo := NewGachaRepository(pool)

	t.Run("DefaultRollPrice", func(t *testing.T) {
		price, err := repo.GetRollPrice(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultRollPrice(), price)
	})

	t.Run("Initialize", func(t *testing.T) {
		_, err := repo.GetAdmin(ctx)
		require.ErrorIs(t, err, domain.ErrNotInitialized)

		require.NoError(t, repo.Initialize(ctx, "admin-1", big.NewInt(5_000_000)))

		admin, err := repo.GetAdmin(ctx)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", admin)

		price, err := repo.GetRollPrice(ctx)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(5_000_000), price)

		err = repo.Initialize(ctx, "admin-2", big.NewInt(1))
		require.ErrorIs(t, err, domain.ErrAlreadyInitialized)

		admin, err = repo.GetAdmin(ctx)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", admin, "failed re-init must not change state")
	})

	t.Run("SetRollPrice_Large", func(t *testing.T) {
		// Beyond int64: NUMERIC(39,0) must round-trip the full range.
		huge, ok := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
		require.True(t, ok)

		require.NoError(t, repo.SetRollPrice(ctx, huge))

		price, err := repo.GetRollPrice(ctx)
		require.NoError(t, err)
		assert.Equal(t, huge, price)

		require.NoError(t, repo.SetRollPrice(ctx, big.NewInt(5_000_000)))
	})

	t.Run("MintFlow", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx) //nolint:errcheck

		id, err := tx.NextTokenID(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)

		ch := domain.Character{
			ID:       id,
			Rarity:   domain.RarityEpic,
			Power:    612,
			Name:     "Epic Dragon Knight",
			Owner:    "player-1",
			RolledAt: 1700000000,
		}
		require.NoError(t, tx.InsertCharacter(ctx, ch))
		require.NoError(t, tx.AppendToOwner(ctx, "player-1", id))
		require.NoError(t, tx.Commit(ctx))

		got, err := repo.GetCharacter(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, ch, *got)

		owned, err := repo.GetUserCharacters(ctx, "player-1")
		require.NoError(t, err)
		assert.Equal(t, []uint64{1}, owned)

		total, err := repo.TotalMinted(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
	})

	t.Run("GetCharacter_Absent", func(t *testing.T) {
		got, err := repo.GetCharacter(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("GetUserCharacters_Unknown", func(t *testing.T) {
		owned, err := repo.GetUserCharacters(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, owned)
	})

	t.Run("DuplicateInsert", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx) //nolint:errcheck

		err = tx.InsertCharacter(ctx, domain.Character{
			ID:    1,
			Name:  "Shadow Warrior",
			Owner: "player-2",
		})
		require.ErrorIs(t, err, domain.ErrDuplicateToken)
	})

	t.Run("RollbackDiscardsRoll", func(t *testing.T) {
		before, err := repo.TotalMinted(ctx)
		require.NoError(t, err)

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		id, err := tx.NextTokenID(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.InsertCharacter(ctx, domain.Character{
			ID: id, Name: "Forest Guardian", Owner: "player-3",
		}))
		require.NoError(t, tx.AppendToOwner(ctx, "player-3", id))
		require.NoError(t, tx.Rollback(ctx))

		after, err := repo.TotalMinted(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		got, err := repo.GetCharacter(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("ConcurrentRolls_UniqueIDs", func(t *testing.T) {
		const workers = 10

		var wg sync.WaitGroup
		ids := make(chan uint64, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()

				tx, err := repo.BeginTx(ctx)
				if err != nil {
					t.Errorf("worker %d: begin: %v", n, err)
					return
				}
				defer tx.Rollback(ctx) //nolint:errcheck

				id, err := tx.NextTokenID(ctx)
				if err != nil {
					t.Errorf("worker %d: next id: %v", n, err)
					return
				}
				owner := fmt.Sprintf("racer-%d", n)
				if err := tx.InsertCharacter(ctx, domain.Character{
					ID: id, Name: "Mystic Sorcerer", Owner: owner,
				}); err != nil {
					t.Errorf("worker %d: insert: %v", n, err)
					return
				}
				if err := tx.AppendToOwner(ctx, owner, id); err != nil {
					t.Errorf("worker %d: append: %v", n, err)
					return
				}
				if err := tx.Commit(ctx); err != nil {
					t.Errorf("worker %d: commit: %v", n, err)
					return
				}
				ids <- id
			}(i)
		}
		wg.Wait()
		close(ids)

		seen := make(map[uint64]bool)
		for id := range ids {
			assert.False(t, seen[id], "token id %d assigned twice", id)
			seen[id] = true
		}
		assert.Len(t, seen, workers)
	})
}

// applyMigrations runs all migration files in order, stripping goose markers
func applyMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var migrationFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			migrationFiles = append(migrationFiles, filepath.Join(migrationsDir, entry.Name()))
		}
	}
	sort.Strings(migrationFiles)

	for _, file := range migrationFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		contentStr := strings.Replace(string(content), "-- +goose Up", "", 1)
		if downIdx := strings.Index(contentStr, "-- +goose Down"); downIdx != -1 {
			contentStr = contentStr[:downIdx]
		}

		if _, err := pool.Exec(ctx, contentStr); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}
