package gacha

import (
	"context"
	"fmt"
	"math/big"

	"github.com/osse101/GachaGame_Go/internal/domain"
	"github.com/osse101/GachaGame_Go/internal/entropy"
	"github.com/osse101/GachaGame_Go/internal/event"
	"github.com/osse101/GachaGame_Go/internal/logger"
	"github.com/osse101/GachaGame_Go/internal/repository"
)

// Service defines the interface for gacha operations
type Service interface {
	// Initialize sets the contract admin and roll price exactly once.
	Initialize(ctx context.Context, adminID string, rollPrice *big.Int) error

	// Roll mints a new character for the caller. Caller authentication is the
	// transport layer's responsibility; by the time Roll runs the caller
	// identity is trusted.
	Roll(ctx context.Context, userID string) (*domain.Character, error)

	// GetCharacter returns a character by token id, or nil when absent.
	GetCharacter(ctx context.Context, tokenID uint64) (*domain.Character, error)

	// GetUserCharacters returns the caller's token ids in mint order.
	GetUserCharacters(ctx context.Context, userID string) ([]uint64, error)

	// GetTotalCharacters returns the number of characters ever minted.
	GetTotalCharacters(ctx context.Context) (uint64, error)

	// SetRollPrice updates the roll price; only the admin may call it.
	SetRollPrice(ctx context.Context, callerID string, newPrice *big.Int) error

	// GetRollPrice returns the current roll price.
	GetRollPrice(ctx context.Context) (*big.Int, error)
}

type service struct {
	repo     repository.Gacha
	ledger   entropy.Ledger
	eventBus event.Bus
	cache    *characterCache
}

// NewService creates a new gacha service
func NewService(repo repository.Gacha, ledger entropy.Ledger, eventBus event.Bus) Service {
	return &service{
		repo:     repo,
		ledger:   ledger,
		eventBus: eventBus,
		cache:    newCharacterCache(CharacterCacheSize, CharacterCacheTTL),
	}
}

// Initialize sets admin and roll price once per ledger lifetime.
func (s *service) Initialize(ctx context.Context, adminID string, rollPrice *big.Int) error {
	log := logger.FromContext(ctx)

	if err := s.repo.Initialize(ctx, adminID, rollPrice); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToInitialize, err)
	}

	log.Info(LogMsgContractInitialized, "admin", adminID, "roll_price", rollPrice.String())

	if err := s.eventBus.Publish(ctx, event.NewContractInitializedEvent(adminID, rollPrice.String())); err != nil {
		log.Error(LogMsgRollEventFailed, "event", event.ContractInitialized, "error", err)
	}
	return nil
}

// Roll mints one character inside a single ledger transaction: token id
// assignment, character insert and owner append commit together or not at
// all. The three attributes draw from distinct entropy calls seeded with
// id, id+1 and id+2 so they do not correlate through identical residues.
func (s *service) Roll(ctx context.Context, userID string) (*domain.Character, error) {
	log := logger.FromContext(ctx)

	// The configured price is read but intentionally not debited: settlement
	// happens in an external payment collaborator, matching the upstream
	// contract which skips token transfer at this layer.
	price, err := s.repo.GetRollPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadPrice, err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginRoll, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	tokenID, err := tx.NextTokenID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToAssignToken, err)
	}

	ts := s.ledger.Timestamp()
	seq := s.ledger.Sequence()

	rarity := rarityFor(entropy.Next(ts, seq, tokenID))
	power := powerFor(rarity, entropy.Next(ts, seq, tokenID+1))
	name := nameFor(rarity, entropy.Next(ts, seq, tokenID+2))

	ch := domain.Character{
		ID:       tokenID,
		Rarity:   rarity,
		Power:    power,
		Name:     name,
		Owner:    userID,
		RolledAt: ts,
	}

	if err := tx.InsertCharacter(ctx, ch); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToStoreRoll, err)
	}
	if err := tx.AppendToOwner(ctx, userID, tokenID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToIndexOwner, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitRoll, err)
	}

	s.cache.Set(ch)

	log.Info(LogMsgCharacterRolled,
		"token_id", tokenID,
		"user_id", userID,
		"rarity", rarity.String(),
		"power", power,
		"roll_price", price.String())

	// Observability only: a failed publish never fails a committed roll.
	if err := s.eventBus.Publish(ctx, event.NewCharacterRolledEvent(ch)); err != nil {
		log.Error(LogMsgRollEventFailed, "event", event.CharacterRolled, "error", err)
	}

	return &ch, nil
}

// GetCharacter returns a character by token id, or nil when absent.
func (s *service) GetCharacter(ctx context.Context, tokenID uint64) (*domain.Character, error) {
	if ch, ok := s.cache.Get(tokenID); ok {
		return ch, nil
	}

	ch, err := s.repo.GetCharacter(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadCharacter, err)
	}
	if ch != nil {
		s.cache.Set(*ch)
	}
	return ch, nil
}

// GetUserCharacters returns the owner's token ids in mint order.
func (s *service) GetUserCharacters(ctx context.Context, userID string) ([]uint64, error) {
	owned, err := s.repo.GetUserCharacters(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadOwned, err)
	}
	return owned, nil
}

// GetTotalCharacters returns the number of characters ever minted.
func (s *service) GetTotalCharacters(ctx context.Context) (uint64, error) {
	total, err := s.repo.TotalMinted(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToReadTotal, err)
	}
	return total, nil
}

// SetRollPrice overwrites the roll price after verifying the caller is the
// configured admin.
func (s *service) SetRollPrice(ctx context.Context, callerID string, newPrice *big.Int) error {
	log := logger.FromContext(ctx)

	admin, err := s.repo.GetAdmin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToReadAdmin, err)
	}
	if callerID != admin {
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, callerID)
	}

	if err := s.repo.SetRollPrice(ctx, newPrice); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpdatePrice, err)
	}

	log.Info(LogMsgRollPriceUpdated, "admin", callerID, "new_price", newPrice.String())

	if err := s.eventBus.Publish(ctx, event.NewRollPriceChangedEvent(callerID, newPrice.String())); err != nil {
		log.Error(LogMsgRollEventFailed, "event", event.RollPriceChanged, "error", err)
	}
	return nil
}

// GetRollPrice returns the current roll price.
func (s *service) GetRollPrice(ctx context.Context) (*big.Int, error) {
	price, err := s.repo.GetRollPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadPrice, err)
	}
	return price, nil
}
