package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"overcooked-agents/config"
	httpapi "overcooked-agents/internal/api/http"
	"overcooked-agents/internal/restaurant"
	"overcooked-agents/internal/service"
	"overcooked-agents/internal/storage"
)

func main() {
	config.InitLogger("sim-svc")
	cfg := config.LoadSim()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		writers []service.EventWriter
		stats   service.StatsReader
		bills   service.BillReader
	)

	if cfg.EnablePostgres {
		db := config.MustInitPostgres()
		defer db.Close()
		ledger := storage.NewPostgresLedger(db)
		if err := ledger.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure schema")
		}
		writers = append(writers, ledger)
		bills = ledger
	}

	if cfg.EnableRedis {
		rdb := config.MustInitRedis()
		defer rdb.Close()
		projection := storage.NewRedisStats(rdb)
		if err := projection.Reset(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to reset stats")
		}
		stats = projection
		// With Kafka enabled agg-svc owns the projection.
		if !cfg.EnableKafka {
			writers = append(writers, projection)
		}
	}

	if cfg.EnableKafka {
		writer := config.NewKafkaWriter(cfg.EventsTopic)
		defer writer.Close()
		writers = append(writers, storage.NewKafkaPublisher(writer))
	}

	recorder := service.NewRecorder(cfg.EventBuffer, writers...)
	recorderCtx, stopRecorder := context.WithCancel(context.Background())
	recorderDone := make(chan struct{})
	go func() {
		recorder.Run(recorderCtx)
		close(recorderDone)
	}()

	sim := service.NewSimulation(service.Layout{
		Tables:    cfg.Tables,
		Waiters:   cfg.Waiters,
		Customers: cfg.Customers,
		Markets:   cfg.Markets,
		Seed:      cfg.Seed,
	}, recorder,
		restaurant.WithTimeUnit(cfg.TimeUnit),
		restaurant.WithRehungry(cfg.AutoRehungry),
	)
	sim.Start(ctx)

	if cfg.AutoRehungry {
		for _, name := range sim.Roster().Customers {
			if err := sim.BecomeHungry(name); err != nil {
				log.Error().Err(err).Msg("failed to start customer")
			}
		}
	}

	handler := httpapi.NewHandler(sim, stats, bills, service.ReceiptQR{BaseURL: cfg.PublicURL})
	srv := httpapi.NewServer(cfg.HTTPAddr, httpapi.NewRouter(handler))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("control API failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("control API shutdown")
	}
	sim.Wait()
	stopRecorder()
	<-recorderDone
	if n := recorder.Dropped(); n > 0 {
		log.Warn().Int64("dropped", n).Msg("events dropped during run")
	}
}
