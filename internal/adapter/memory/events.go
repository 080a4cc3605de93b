package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"mesa-placements/internal/core/domain"
)

// EventLog implements port.EventPublisher by keeping events in memory and
// logging them. It stands in for Kafka when no brokers are configured.
type EventLog struct {
	mu     sync.Mutex
	events []domain.BookingEvent
	logger *slog.Logger
}

func NewEventLog(logger *slog.Logger) *EventLog {
	return &EventLog{logger: logger}
}

func (l *EventLog) Publish(ctx context.Context, ev domain.BookingEvent) error {
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()
	if l.logger != nil {
		l.logger.DebugContext(ctx, "booking event",
			slog.String("type", ev.Type),
			slog.Int64("booking_id", ev.BookingID),
			slog.String("status", string(ev.Status)))
	}
	return nil
}

// Events returns a copy of the published events in order.
func (l *EventLog) Events() []domain.BookingEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.events)
}
