package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"

	"github.com/unclebandit/storefront-backend/internal/config"
	"github.com/unclebandit/storefront-backend/internal/logger"
	"github.com/unclebandit/storefront-backend/internal/queue"
	"github.com/unclebandit/storefront-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Log.Level, cfg.App.Env, "worker")

	if cfg.AMQP.URL == "" {
		log.Fatal().Msg("AMQP_URL is required for the worker")
	}

	// Connect to RabbitMQ
	q, err := queue.DialAMQP(cfg.AMQP.URL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer q.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := service.NewEventWorker(log)

	log.Info().Str("queue", cfg.AMQP.Queue).Msg("worker running, waiting for events")
	if err := run(ctx, q, cfg.AMQP.Queue, worker, q.NotifyClose()); err != nil {
		log.Fatal().Err(err).Msg("worker stopped")
	}

	log.Info().Interface("processed", worker.Counts()).Msg("worker stopped")
}

// run subscribes worker to topic and blocks until ctx is done or the broker
// connection closes.
func run(ctx context.Context, q queue.Queue, topic string, worker *service.EventWorker, closed <-chan *amqp.Error) error {
	if err := q.Subscribe(topic, worker.Handle); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return nil
	case err, ok := <-closed:
		if ok && err != nil {
			return fmt.Errorf("rabbitmq connection closed: %w", err)
		}
		return fmt.Errorf("rabbitmq connection closed")
	}
}
