package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy() *Policy {
	return &Policy{
		InitialInterval:    time.Millisecond,
		BackoffCoefficient: 2.0,
		MaximumInterval:    5 * time.Millisecond,
		MaximumAttempts:    3,
	}
}

func TestExecuteSucceedsFirstAttempt(t *testing.T) {
	executor := NewExecutor(fastPolicy())

	calls := 0
	err := executor.Execute(context.Background(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteRetriesUntilSuccess(t *testing.T) {
	executor := NewExecutor(fastPolicy())

	calls := 0
	err := executor.Execute(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteExhaustsAttempts(t *testing.T) {
	executor := NewExecutor(fastPolicy())

	failure := errors.New("persistent")
	calls := 0
	err := executor.Execute(context.Background(), func() error {
		calls++
		return failure
	})

	require.Error(t, err)
	assert.Equal(t, failure, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteRespectsCancellation(t *testing.T) {
	executor := NewExecutor(&Policy{
		InitialInterval:    time.Minute,
		BackoffCoefficient: 2.0,
		MaximumInterval:    time.Minute,
		MaximumAttempts:    3,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- executor.Execute(ctx, func() error {
			return errors.New("transient")
		})
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Execute did not return after cancellation")
	}
}
