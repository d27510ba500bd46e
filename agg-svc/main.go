package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"overcooked-agents/config"
	"overcooked-agents/internal/service"
	"overcooked-agents/internal/storage"
)

// agg-svc folds the restaurant event stream into the Redis stats projection
// that sim-svc serves on /api/stats.
func main() {
	config.InitLogger("agg-svc")
	cfg := config.LoadSim()

	if !cfg.EnableKafka || !cfg.EnableRedis {
		log.Fatal().Msg("agg-svc needs KAFKA_BROKER and REDIS_HOST")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.EventsTopic, "agg-svc-events")
	defer reader.Close()

	service.NewConsumer(reader, storage.NewRedisStats(rdb)).Start(ctx)
}
