package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter
// file. Roll events are observability data: a failed publish must never fail
// the roll, so Publish accepts the event and retries asynchronously.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	mu     sync.Mutex // serializes dead-letter file writes
	wg     sync.WaitGroup
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish attempts one synchronous delivery and hands failures to a
// background retry loop. It returns nil as soon as the event is accepted.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	if err := p.inner.Publish(ctx, event); err == nil {
		return nil
	} else {
		slog.Warn(LogMsgEventPublishFailed,
			"event_type", event.Type,
			"error", err,
			"retries", p.config.MaxRetries)
	}

	p.wg.Add(1)
	go p.retryLoop(event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown waits for in-flight retry loops to drain or the context to expire.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *ResilientPublisher) retryLoop(event Event) {
	defer p.wg.Done()

	// Detached context: the originating request may already be cancelled.
	ctx := context.Background()

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(p.config.RetryDelay * time.Duration(attempt))

		if err := p.inner.Publish(ctx, event); err == nil {
			slog.Info(LogMsgEventRetrySucceeded,
				"event_type", event.Type,
				"attempt", attempt)
			return
		} else {
			slog.Warn(LogMsgEventRetryFailed,
				"event_type", event.Type,
				"attempt", attempt,
				"error", err)
		}
	}

	slog.Error(LogMsgEventRetryExhausted, "event_type", event.Type)
	p.writeToDeadLetter(event)
}

// deadLetterEntry is the JSON line format of the dead-letter file.
type deadLetterEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Event     Event     `json:"event"`
}

func (p *ResilientPublisher) writeToDeadLetter(event Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		slog.Error(LogMsgDeadLetterOpenFailed, "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	entry := deadLetterEntry{
		Timestamp: time.Now(),
		Event:     event,
	}
	if err := json.NewEncoder(f).Encode(entry); err != nil {
		slog.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}
