package latency

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroDelayRunsSynchronously(t *testing.T) {
	var calls int32
	f := Go(NewSimulator(0), func() (int, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	})

	select {
	case <-f.Done():
	default:
		t.Fatal("future should already be resolved")
	}
	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestNilSimulator(t *testing.T) {
	var s *Simulator
	assert.Equal(t, time.Duration(0), s.Delay())

	err := Exec(context.Background(), s, func() error { return errors.New("boom") })
	assert.EqualError(t, err, "boom")
}

func TestDelayedFutureResolvesLater(t *testing.T) {
	s := NewSimulator(20 * time.Millisecond)
	start := time.Now()

	v, err := Run(context.Background(), s, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestAbandonedWaitStillApplies(t *testing.T) {
	s := NewSimulator(30 * time.Millisecond)
	var applied int32

	ctx, cancel := context.WithCancel(context.Background())
	f := Go(s, func() (struct{}, error) {
		atomic.StoreInt32(&applied, 1)
		return struct{}{}, nil
	})
	cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	<-f.Done()
	assert.Equal(t, int32(1), atomic.LoadInt32(&applied))
}

func TestNegativeDelayClamped(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewSimulator(-time.Second).Delay())
}
