package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GachaGame_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	CharacterRolled     Type = "character.rolled"
	ContractInitialized Type = "contract.initialized"
	RollPriceChanged    Type = "price.changed"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Type-safe event constructors

// NewCharacterRolledEvent creates the observability event emitted by every
// successful roll. Rarity travels as its integer form (0-3), mirroring the
// on-chain event tuple (token_id, rarity, power) keyed by the roller.
func NewCharacterRolledEvent(ch domain.Character) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CharacterRolled,
		Payload: domain.CharacterRolledPayload{
			TokenID:   ch.ID,
			UserID:    ch.Owner,
			Rarity:    int(ch.Rarity),
			Power:     ch.Power,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewContractInitializedEvent creates a contract initialization event
func NewContractInitializedEvent(adminID, rollPrice string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ContractInitialized,
		Payload: domain.ContractInitializedPayload{
			AdminID:   adminID,
			RollPrice: rollPrice,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewRollPriceChangedEvent creates a roll price change event
func NewRollPriceChangedEvent(adminID, newPrice string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RollPriceChanged,
		Payload: domain.RollPriceChangedPayload{
			AdminID:   adminID,
			NewPrice:  newPrice,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
