package reaper

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	calls  atomic.Int64
	purged int64
	err    error
}

func (s *countingStore) PurgeExpired(context.Context) (int64, error) {
	s.calls.Add(1)
	return s.purged, s.err
}

func TestNewRunner_RequiresStore(t *testing.T) {
	_, err := NewRunner(RunnerOptions{})
	assert.Error(t, err)
}

func TestNewRunner_DefaultsInterval(t *testing.T) {
	r, err := NewRunner(RunnerOptions{Store: &countingStore{}})
	require.NoError(t, err)
	assert.Equal(t, defaultInterval, r.interval)
}

func TestRunner_SweepsUntilCancelled(t *testing.T) {
	store := &countingStore{purged: 3}
	r, err := NewRunner(RunnerOptions{
		Store:    store,
		Interval: 5 * time.Millisecond,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	err = r.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, store.calls.Load())
}

func TestRunner_KeepsGoingAfterFailure(t *testing.T) {
	store := &countingStore{err: errors.New("db down")}
	r, err := NewRunner(RunnerOptions{
		Store:    store,
		Interval: 5 * time.Millisecond,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	_ = r.Run(ctx)
	assert.GreaterOrEqual(t, store.calls.Load(), int64(2))
}
