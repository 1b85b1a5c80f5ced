package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueProcessesJobs(t *testing.T) {
	done := make(chan string, 1)
	q := NewQueue("mail", func(_ context.Context, job Job) error {
		done <- job.Payload.(string)
		return nil
	}, QueueConfig{Workers: 1})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{Type: "vendor.approved", Payload: "ops@acme.test"}))

	select {
	case got := <-done:
		assert.Equal(t, "ops@acme.test", got)
	case <-time.After(2 * time.Second):
		t.Fatal("job was not processed")
	}
}

func TestQueueRetriesThenDrops(t *testing.T) {
	var attempts int32
	dropped := make(chan Job, 1)
	q := NewQueue("mail", func(context.Context, Job) error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("smtp unavailable")
	}, QueueConfig{
		Workers:    1,
		MaxRetries: 2,
		RetryDelay: 5 * time.Millisecond,
		OnDrop:     func(j Job, _ error) { dropped <- j },
	})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{Type: "vendor.rejected"}))

	select {
	case job := <-dropped:
		assert.Equal(t, 3, job.Attempt)
		assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
	case <-time.After(2 * time.Second):
		t.Fatal("job was not dropped")
	}
}

func TestQueueRecoversFromPanic(t *testing.T) {
	dropped := make(chan error, 1)
	q := NewQueue("mail", func(context.Context, Job) error {
		panic("template nil")
	}, QueueConfig{Workers: 1, MaxRetries: 0, OnDrop: func(_ Job, err error) { dropped <- err }})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{Type: "admin.alert"}))
	select {
	case err := <-dropped:
		assert.Contains(t, err.Error(), "panicked")
	case <-time.After(2 * time.Second):
		t.Fatal("panic was not converted to a failure")
	}
}

func TestEnqueueBeforeStartFails(t *testing.T) {
	q := NewQueue("mail", func(context.Context, Job) error { return nil }, QueueConfig{})
	assert.Error(t, q.Enqueue(Job{}))
}

func TestEnqueueFullBufferDoesNotBlock(t *testing.T) {
	block := make(chan struct{})
	q := NewQueue("mail", func(ctx context.Context, _ Job) error {
		select {
		case <-block:
		case <-ctx.Done():
		}
		return nil
	}, QueueConfig{Workers: 1, BufferSize: 1})
	q.Start(context.Background())
	defer func() {
		close(block)
		q.Stop()
	}()

	var full bool
	for i := 0; i < 5; i++ {
		if err := q.Enqueue(Job{}); errors.Is(err, ErrQueueFull) {
			full = true
			break
		}
	}
	assert.True(t, full)
}
