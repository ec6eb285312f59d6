package queue

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue() *InMemoryQueue {
	q := NewInMemoryQueue(zerolog.Nop())
	q.backoff = time.Millisecond
	return q
}

func TestPublishWithoutSubscribers(t *testing.T) {
	q := newTestQueue()
	err := q.Publish(TopicResourceEvents, 1)
	assert.EqualError(t, err, "no subscribers for topic resource_events")
}

func TestPublishDeliversToEverySubscriber(t *testing.T) {
	q := newTestQueue()

	var a, b atomic.Int32
	require.NoError(t, q.Subscribe("t", func(payload any) error {
		a.Add(int32(payload.(int)))
		return nil
	}))
	require.NoError(t, q.Subscribe("t", func(payload any) error {
		b.Add(int32(payload.(int)))
		return nil
	}))

	require.NoError(t, q.Publish("t", 2))
	require.NoError(t, q.Publish("t", 3))
	q.Wait()

	assert.Equal(t, int32(5), a.Load())
	assert.Equal(t, int32(5), b.Load())
}

func TestFailingJobIsRetried(t *testing.T) {
	q := newTestQueue()

	var calls atomic.Int32
	require.NoError(t, q.Subscribe("t", func(payload any) error {
		if calls.Add(1) < 3 {
			return errors.New("broker busy")
		}
		return nil
	}))

	require.NoError(t, q.Publish("t", "x"))
	q.Wait()

	assert.Equal(t, int32(3), calls.Load())
}

func TestJobGivesUpAfterMaxRetries(t *testing.T) {
	q := newTestQueue()

	var calls atomic.Int32
	require.NoError(t, q.Subscribe("t", func(payload any) error {
		calls.Add(1)
		return errors.New("always")
	}))

	require.NoError(t, q.Publish("t", "x"))
	q.Wait()

	// first attempt plus maxRetries
	assert.Equal(t, int32(q.maxRetries+1), calls.Load())
}
