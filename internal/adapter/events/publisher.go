package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"mesa-placements/internal/core/domain"
)

// Publisher implements port.EventPublisher on a Kafka topic. Messages are
// keyed by placement id so that events of one placement stay ordered.
type Publisher struct {
	writer  *kafka.Writer
	topic   string
	timeout time.Duration
}

func NewPublisher(brokers []string, topic string, timeout time.Duration) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka publisher requires a topic")
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
		topic:   topic,
		timeout: timeout,
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, ev domain.BookingEvent) error {
	msg, err := p.message(ev)
	if err != nil {
		return err
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	return nil
}

func (p *Publisher) message(ev domain.BookingEvent) (kafka.Message, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s: %w", ev.Type, err)
	}
	return kafka.Message{
		Topic: p.topic,
		Key:   []byte(strconv.FormatInt(ev.PlacementID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.Type)},
		},
		Time: ev.OccurredAt,
	}, nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
