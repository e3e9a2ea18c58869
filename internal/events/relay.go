package events

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Publisher sends raw payloads to a named channel. *persistence.Redis
// satisfies it.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// NewRelayHandler forwards events as JSON to channel on pub.
func NewRelayHandler(pub Publisher, channel string) EventHandler {
	return func(ctx context.Context, event Event) error {
		body, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("encode event %s: %w", event.ID, err)
		}
		if err := pub.Publish(ctx, channel, body); err != nil {
			return fmt.Errorf("relay event %s: %w", event.ID, err)
		}
		return nil
	}
}

// NewLogHandler writes a log line per event.
func NewLogHandler(logger *zap.Logger) EventHandler {
	return func(_ context.Context, event Event) error {
		logger.Info("employee event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("employee_id", event.EmployeeID),
		)
		return nil
	}
}

// AllTypes lists every employee lifecycle event type.
func AllTypes() []EventType {
	return []EventType{EventEmployeeCreated, EventEmployeeUpdated, EventEmployeeDeleted}
}
