package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"overcooked-agents/internal/domain"
	"overcooked-agents/internal/storage"
)

type SimulationServiceInterface interface {
	BecomeHungry(name string) error
	SetWaiterBreak(name string, on bool) error
	Roster() Roster
}

type StatsReader interface {
	Snapshot(ctx context.Context) (domain.Stats, error)
}

type BillReader interface {
	GetBill(ctx context.Context, id uuid.UUID) (domain.Bill, error)
	ListBills(ctx context.Context, party string, limit int) ([]domain.Bill, error)
}

// EventWriter is a destination for agent events.
type EventWriter interface {
	WriteEvent(ctx context.Context, ev domain.Event) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type QRGenerator interface {
	Generate(billID uuid.UUID) ([]byte, error)
}

var (
	_ SimulationServiceInterface = (*Simulation)(nil)
	_ EventWriter                = (*storage.PostgresLedger)(nil)
	_ EventWriter                = (*storage.RedisStats)(nil)
	_ EventWriter                = (*storage.KafkaPublisher)(nil)
	_ StatsReader                = (*storage.RedisStats)(nil)
	_ BillReader                 = (*storage.PostgresLedger)(nil)
	_ MessageReader              = (*kafka.Reader)(nil)
	_ QRGenerator                = ReceiptQR{}
	_ domain.EventSink           = (*Recorder)(nil)
)
