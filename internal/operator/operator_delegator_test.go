package operator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-server/internal/storage"
)

type failingWriterFactory struct {
	err error
}

func (f *failingWriterFactory) Write(ctx context.Context) (*storage.Writer, error) {
	return nil, f.err
}

type noopAction struct {
	performed bool
}

func (a *noopAction) Perform(ctx context.Context, writer *storage.Writer) error {
	a.performed = true
	return nil
}

func TestProcessPropagatesWriterError(t *testing.T) {
	factoryErr := errors.New("connection refused")
	delegator := NewOperatorDelegator(&failingWriterFactory{err: factoryErr}, 2)
	delegator.Start()
	defer delegator.Stop()

	action := &noopAction{}
	err := delegator.Process(context.Background(), action)

	assert.ErrorIs(t, err, factoryErr)
	assert.False(t, action.performed)
}

func TestProcessHonoursContextCancellation(t *testing.T) {
	// No workers draining the queue, so Process can only return via the context.
	delegator := &OperatorDelegator{
		writers: &failingWriterFactory{},
		queue:   make(chan ActionItem, 1),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := delegator.Process(ctx, &noopAction{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcessReturnsWhenQueueIsFull(t *testing.T) {
	// An unbuffered queue with no workers never accepts the item, so the
	// enqueue itself must yield to the context.
	delegator := &OperatorDelegator{
		writers: &failingWriterFactory{},
		queue:   make(chan ActionItem),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := delegator.Process(ctx, &noopAction{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStopIsIdempotent(t *testing.T) {
	delegator := NewOperatorDelegator(&failingWriterFactory{err: errors.New("unused")}, 1)
	delegator.Start()

	delegator.Stop()
	assert.NotPanics(t, func() { delegator.Stop() })
}

func TestNewOperatorDelegatorClampsWorkerCount(t *testing.T) {
	delegator := NewOperatorDelegator(&failingWriterFactory{}, 0)
	assert.Equal(t, 1, delegator.numWorkers)
}
