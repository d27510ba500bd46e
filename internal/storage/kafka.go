package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"overcooked-agents/internal/domain"
)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// WriteEvent publishes ev keyed by agent so one agent's events stay ordered
// within a partition.
func (p *KafkaPublisher) WriteEvent(ctx context.Context, ev domain.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Agent),
		Value: payload,
	})
}
