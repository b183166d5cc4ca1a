package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GachaGame_Go/internal/domain"
	"github.com/osse101/GachaGame_Go/internal/repository"
)

// GachaRepository implements the gacha ledger for PostgreSQL.
//
// Configuration scalars and the token counter live in the single-row
// gacha_state table. The counter row is updated atomically, so concurrent
// rolls across processes never receive the same token id. The roll price is
// a NUMERIC column read and written as a decimal string to keep the full
// 128-bit range intact.
type GachaRepository struct {
	db *pgxpool.Pool
}

// NewGachaRepository creates a new GachaRepository
func NewGachaRepository(db *pgxpool.Pool) *GachaRepository {
	return &GachaRepository{db: db}
}

// GachaTx implements repository.GachaTx over a pgx transaction
type GachaTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *GachaRepository) BeginTx(ctx context.Context) (repository.GachaTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &GachaTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *GachaTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *GachaTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}

// Initialize sets the admin, roll price and counter exactly once
func (r *GachaRepository) Initialize(ctx context.Context, admin string, rollPrice *big.Int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE gacha_state
		SET initialized = TRUE, admin_id = $1, roll_price = $2::numeric, counter = 1
		WHERE singleton AND NOT initialized`,
		admin, rollPrice.String())
	if err != nil {
		return fmt.Errorf("failed to initialize gacha state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyInitialized
	}
	return nil
}

// GetAdmin returns the admin identity set at initialization
func (r *GachaRepository) GetAdmin(ctx context.Context) (string, error) {
	var initialized bool
	var admin *string
	err := r.db.QueryRow(ctx,
		`SELECT initialized, admin_id FROM gacha_state WHERE singleton`).
		Scan(&initialized, &admin)
	if err != nil {
		return "", fmt.Errorf("failed to get admin: %w", err)
	}
	if !initialized || admin == nil {
		return "", domain.ErrNotInitialized
	}
	return *admin, nil
}

// GetRollPrice returns the configured price or the default when unset
func (r *GachaRepository) GetRollPrice(ctx context.Context) (*big.Int, error) {
	var price *string
	err := r.db.QueryRow(ctx,
		`SELECT roll_price::text FROM gacha_state WHERE singleton`).
		Scan(&price)
	if err != nil {
		return nil, fmt.Errorf("failed to get roll price: %w", err)
	}
	if price == nil {
		return domain.DefaultRollPrice(), nil
	}
	parsed, ok := new(big.Int).SetString(*price, 10)
	if !ok {
		return nil, fmt.Errorf("invalid roll price stored: %q", *price)
	}
	return parsed, nil
}

// SetRollPrice overwrites the stored price
func (r *GachaRepository) SetRollPrice(ctx context.Context, price *big.Int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE gacha_state SET roll_price = $1::numeric WHERE singleton`,
		price.String())
	if err != nil {
		return fmt.Errorf("failed to set roll price: %w", err)
	}
	return nil
}

// GetCharacter retrieves a character by token id, or nil when absent
func (r *GachaRepository) GetCharacter(ctx context.Context, tokenID uint64) (*domain.Character, error) {
	var ch domain.Character
	var rarity int16
	var power int64
	err := r.db.QueryRow(ctx, `
		SELECT token_id, rarity, power, name, owner_id, rolled_at
		FROM characters WHERE token_id = $1`, int64(tokenID)).
		Scan(&ch.ID, &rarity, &power, &ch.Name, &ch.Owner, &ch.RolledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	ch.Rarity = domain.Rarity(rarity)
	ch.Power = uint32(power)
	return &ch, nil
}

// GetUserCharacters returns the owner's token ids in mint order
func (r *GachaRepository) GetUserCharacters(ctx context.Context, owner string) ([]uint64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT token_id FROM owner_characters
		WHERE owner_id = $1 ORDER BY position`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get owned characters: %w", err)
	}
	defer rows.Close()

	owned := []uint64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan token id: %w", err)
		}
		owned = append(owned, uint64(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read owned characters: %w", err)
	}
	return owned, nil
}

// TotalMinted returns the number of characters ever rolled
func (r *GachaRepository) TotalMinted(ctx context.Context) (uint64, error) {
	var counter int64
	err := r.db.QueryRow(ctx,
		`SELECT counter FROM gacha_state WHERE singleton`).
		Scan(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to get counter: %w", err)
	}
	return uint64(counter - 1), nil
}

// NextTokenID consumes the current counter value and advances it. The row
// update takes a lock on the state row, serializing concurrent rolls.
func (t *GachaTx) NextTokenID(ctx context.Context) (uint64, error) {
	var assigned int64
	err := t.tx.QueryRow(ctx, `
		UPDATE gacha_state SET counter = counter + 1
		WHERE singleton
		RETURNING counter - 1`).
		Scan(&assigned)
	if err != nil {
		return 0, fmt.Errorf("failed to advance counter: %w", err)
	}
	return uint64(assigned), nil
}

// InsertCharacter stores a freshly rolled character. The token id is the
// primary key, so a repeat insert surfaces as domain.ErrDuplicateToken.
func (t *GachaTx) InsertCharacter(ctx context.Context, ch domain.Character) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO characters (token_id, rarity, power, name, owner_id, rolled_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		int64(ch.ID), int16(ch.Rarity), int64(ch.Power), ch.Name, ch.Owner, int64(ch.RolledAt))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: %d", domain.ErrDuplicateToken, ch.ID)
		}
		return fmt.Errorf("failed to insert character: %w", err)
	}
	return nil
}

// AppendToOwner appends the token id at the end of the owner's sequence
func (t *GachaTx) AppendToOwner(ctx context.Context, owner string, tokenID uint64) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO owner_characters (owner_id, position, token_id)
		SELECT $1, COALESCE(MAX(position) + 1, 0), $2
		FROM owner_characters WHERE owner_id = $1`,
		owner, int64(tokenID))
	if err != nil {
		return fmt.Errorf("failed to append to owner index: %w", err)
	}
	return nil
}
