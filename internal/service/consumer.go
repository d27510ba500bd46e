package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"overcooked-agents/internal/domain"
)

// Consumer reads agent events from Kafka and applies them to the stats
// projection.
type Consumer struct {
	Reader MessageReader
	Stats  EventWriter
}

func NewConsumer(reader MessageReader, stats EventWriter) *Consumer {
	return &Consumer{
		Reader: reader,
		Stats:  stats,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Info().Msg("starting event aggregation consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Msg("event aggregation consumer stopped")
				return
			}
			log.Error().Err(err).Msg("error reading message")
			continue
		}

		var ev domain.Event
		if err := json.Unmarshal(message.Value, &ev); err != nil {
			log.Error().Err(err).Str("key", string(message.Key)).Msg("error unmarshaling event")
			continue
		}

		c.ProcessEvent(ctx, ev)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, ev domain.Event) {
	if ev.Type == "" {
		return
	}
	if err := c.Stats.WriteEvent(ctx, ev); err != nil {
		log.Error().Err(err).Str("type", string(ev.Type)).Str("agent", ev.Agent).Msg("error updating stats")
		return
	}
	log.Debug().Str("type", string(ev.Type)).Str("agent", ev.Agent).Msg("event aggregated")
}
