package metrics

import (
	"context"

	"github.com/osse101/GachaGame_Go/internal/domain"
	"github.com/osse101/GachaGame_Go/internal/event"
	"github.com/osse101/GachaGame_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all event types the collector records.
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CharacterRolled,
		event.ContractInitialized,
		event.RollPriceChanged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.CharacterRolled:
		payload, err := event.DecodePayload[domain.CharacterRolledPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnreadable, "type", evt.Type, "error", err)
			return nil
		}
		CharactersRolled.WithLabelValues(domain.Rarity(payload.Rarity).String()).Inc()
		RollPower.Observe(float64(payload.Power))
	case event.RollPriceChanged:
		RollPriceUpdates.Inc()
	}

	return nil
}
