package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{name: "valid config", config: Config{Workers: 4}},
		{name: "valid config with rate limit", config: Config{Workers: 2, RateLimit: 10}},
		{name: "zero workers", config: Config{Workers: 0}, wantErr: "must be positive"},
		{name: "negative workers", config: Config{Workers: -1}, wantErr: "must be positive"},
		{name: "negative rate limit", config: Config{Workers: 1, RateLimit: -1}, wantErr: "non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := NewPool(tt.config)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, pool)
		})
	}
}

func TestPoolProcessesTasksInOrder(t *testing.T) {
	pool, err := NewPool(Config{Workers: 4})
	require.NoError(t, err)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	const tasks = 20
	for i := 0; i < tasks; i++ {
		id := i
		err := pool.Submit(Task{
			ID: id,
			Execute: func(ctx context.Context) (Result, error) {
				return Result{ID: id, Data: id * 2}, nil
			},
		})
		require.NoError(t, err)
	}

	results, err := pool.Wait()
	require.NoError(t, err)
	require.Len(t, results, tasks)

	for i, result := range results {
		assert.Equal(t, i, result.ID, "results must be sorted by task ID")
		assert.Equal(t, i*2, result.Data)
	}
}

func TestPoolCollectsTaskErrors(t *testing.T) {
	pool, err := NewPool(Config{Workers: 2})
	require.NoError(t, err)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.NoError(t, pool.Submit(Task{
		ID: 0,
		Execute: func(ctx context.Context) (Result, error) {
			return Result{ID: 0}, nil
		},
	}))
	require.NoError(t, pool.Submit(Task{
		ID: 1,
		Execute: func(ctx context.Context) (Result, error) {
			return Result{}, fmt.Errorf("boom")
		},
	}))

	results, err := pool.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 task(s) failed")
	assert.Len(t, results, 1)
}

func TestPoolLifecycle(t *testing.T) {
	pool, err := NewPool(Config{Workers: 1})
	require.NoError(t, err)

	// Submit before start is rejected.
	err = pool.Submit(Task{ID: 0})
	require.Error(t, err)

	require.NoError(t, pool.Start(context.Background()))
	require.Error(t, pool.Start(context.Background()), "second start must fail")

	require.NoError(t, pool.Stop())
	require.NoError(t, pool.Stop(), "stop is idempotent")

	err = pool.Submit(Task{ID: 0})
	require.Error(t, err, "submit after stop is rejected")
}

func TestPoolRateLimit(t *testing.T) {
	pool, err := NewPool(Config{Workers: 4, RateLimit: 20})
	require.NoError(t, err)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	var executed atomic.Int32
	start := time.Now()

	const tasks = 5
	for i := 0; i < tasks; i++ {
		require.NoError(t, pool.Submit(Task{
			ID: i,
			Execute: func(ctx context.Context) (Result, error) {
				executed.Add(1)
				return Result{}, nil
			},
		}))
	}

	_, err = pool.Wait()
	require.NoError(t, err)
	assert.Equal(t, int32(tasks), executed.Load())

	// 5 tasks at 20/sec need at least ~200ms for the last token.
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}
