// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/unclebandit/storefront-backend/internal/config"
	"github.com/unclebandit/storefront-backend/internal/controller"
	"github.com/unclebandit/storefront-backend/internal/db"
	"github.com/unclebandit/storefront-backend/internal/handler"
	"github.com/unclebandit/storefront-backend/internal/logger"
	"github.com/unclebandit/storefront-backend/internal/queue"
	"github.com/unclebandit/storefront-backend/internal/repository"
	"github.com/unclebandit/storefront-backend/internal/router"
	"github.com/unclebandit/storefront-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Log.Level, cfg.App.Env, "server")

	// Init DB
	database, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}
	defer database.Close()
	log.Info().Str("host", cfg.DB.Host).Str("db", cfg.DB.Name).Msg("✅ connected to database")

	q, closeQueue := newQueue(cfg, log)
	defer closeQueue()
	events := service.NewEventPublisher(q, log)
	events.Topic = cfg.AMQP.Queue

	customerRepo := &repository.CustomerRepository{DB: database}
	productRepo := &repository.ProductRepository{DB: database}

	customerController := &controller.CustomerController{
		CustomerService: &service.CustomerService{Repo: customerRepo, Events: events},
	}
	productController := &controller.ProductController{
		ProductService: &service.ProductService{Repo: productRepo, Events: events},
	}

	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: router.New(router.Deps{
			Log:       log,
			Customers: customerController,
			Products:  productController,
			Health:    handler.NewHealthHandler(database),
		}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("🚀 server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newQueue publishes to RabbitMQ when AMQP_URL is set. Otherwise events go
// to an in-process queue whose only subscriber logs them.
func newQueue(cfg *config.Config, log zerolog.Logger) (queue.Queue, func()) {
	if cfg.AMQP.URL == "" {
		q := queue.NewInMemoryQueue(log)
		worker := service.NewEventWorker(log)
		if err := q.Subscribe(cfg.AMQP.Queue, worker.Handle); err != nil {
			log.Warn().Err(err).Msg("failed to subscribe event worker")
		}
		return q, q.Wait
	}

	q, err := queue.DialAMQP(cfg.AMQP.URL, log)
	if err != nil {
		// Events are best effort; the API keeps serving without them.
		log.Error().Err(err).Msg("rabbitmq unavailable, resource events disabled")
		return nil, func() {}
	}
	return q, func() { _ = q.Close() }
}
