package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"overcooked-agents/internal/domain"
)

const writeTimeout = 5 * time.Second

// Recorder fans agent events out to the configured writers on its own
// goroutine. Emit never blocks the calling agent; when the buffer is full the
// event is dropped and counted.
type Recorder struct {
	events  chan domain.Event
	writers []EventWriter
	dropped atomic.Int64
}

func NewRecorder(buffer int, writers ...EventWriter) *Recorder {
	if buffer <= 0 {
		buffer = 1
	}
	return &Recorder{
		events:  make(chan domain.Event, buffer),
		writers: writers,
	}
}

func (r *Recorder) Emit(ev domain.Event) {
	select {
	case r.events <- ev:
	default:
		if n := r.dropped.Add(1); n == 1 || n%100 == 0 {
			log.Warn().Int64("dropped", n).Str("type", string(ev.Type)).Msg("event buffer full, dropping events")
		}
	}
}

func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Run writes events until ctx is cancelled, then flushes whatever is still
// buffered.
func (r *Recorder) Run(ctx context.Context) {
	for {
		select {
		case ev := <-r.events:
			r.write(ev)
		case <-ctx.Done():
			r.flush()
			return
		}
	}
}

func (r *Recorder) flush() {
	for {
		select {
		case ev := <-r.events:
			r.write(ev)
		default:
			return
		}
	}
}

func (r *Recorder) write(ev domain.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	for _, w := range r.writers {
		if err := w.WriteEvent(ctx, ev); err != nil {
			log.Error().Err(err).Str("type", string(ev.Type)).Str("agent", ev.Agent).Msg("failed to record event")
		}
	}
}
