// Package events publishes order lifecycle events to Kafka. Publishing is
// best-effort: the checkout has already committed by the time an event is
// emitted, so consumers must tolerate gaps.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// OrderCompleted is emitted after a checkout commits.
type OrderCompleted struct {
	OrderID      int64     `json:"order_id"`
	UserID       int64     `json:"user_id"`
	ExternalID   int64     `json:"external_id"`
	TotalAmount  int64     `json:"total_amount"`
	EcoFeeTotal  int64     `json:"eco_fee_total"`
	PointsEarned int       `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

// Publisher emits order lifecycle events.
type Publisher interface {
	PublishOrderCompleted(ctx context.Context, event OrderCompleted) error
	Close() error
}

// kafkaPublisher implements Publisher over a kafka-go writer.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// NewKafkaPublisher creates a Kafka-backed publisher for the given brokers
// and topic. Messages are keyed by user id so one user's orders stay ordered
// within a partition.
func NewKafkaPublisher(brokers []string, topic string, logger zerolog.Logger) Publisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &kafkaPublisher{
		writer: writer,
		logger: logger.With().Str("component", "kafka-publisher").Logger(),
	}
}

// PublishOrderCompleted writes one OrderCompleted message.
func (p *kafkaPublisher) PublishOrderCompleted(ctx context.Context, event OrderCompleted) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode order event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	p.logger.Debug().
		Int64("order_id", event.OrderID).
		Int64("user_id", event.UserID).
		Msg("order event published")

	return nil
}

// Close flushes and closes the underlying writer.
func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
