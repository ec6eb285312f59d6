package main

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/storefront-backend/internal/model"
	"github.com/unclebandit/storefront-backend/internal/queue"
	"github.com/unclebandit/storefront-backend/internal/service"
)

func TestWorker(t *testing.T) {
	q := queue.NewInMemoryQueue(zerolog.Nop())
	worker := service.NewEventWorker(zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, q, "resource_events", worker, nil) }()

	event := model.ResourceEvent{Resource: model.ResourceProduct, Action: model.ActionCreated, ID: 1}

	// publishing fails until run has subscribed
	require.Eventually(t, func() bool {
		return q.Publish("resource_events", event) == nil
	}, time.Second, 5*time.Millisecond)
	q.Wait()

	assert.Equal(t, 1, worker.Counts()["produto.created"])

	cancel()
	assert.NoError(t, <-done)
}

func TestWorkerStopsWhenConnectionCloses(t *testing.T) {
	q := queue.NewInMemoryQueue(zerolog.Nop())
	worker := service.NewEventWorker(zerolog.Nop())

	closed := make(chan *amqp.Error, 1)
	closed <- &amqp.Error{Code: amqp.ConnectionForced, Reason: "broker shutdown"}

	err := run(context.Background(), q, "resource_events", worker, closed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker shutdown")
}
