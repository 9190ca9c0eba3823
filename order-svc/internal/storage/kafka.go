package storage

import (
	"context"
	"encoding/json"

	"repartoya/order-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher emits order events keyed by order id so every change to
// one order lands on the same partition, in order.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}
