package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"amur-backend/internal/domain"
)

// KafkaPublisher emits order lifecycle events keyed by order id so all events
// of one order land in the same partition in order.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}
