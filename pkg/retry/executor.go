// Package retry executes operations with exponential backoff. The directory
// cache uses it to ride out transient Redis failures.
package retry

import (
	"context"
	"time"

	"github.com/Ingenimax/orgcontext-go/pkg/logging"
)

// Policy describes how an operation is retried
type Policy struct {
	// InitialInterval is the delay before the first retry
	InitialInterval time.Duration

	// BackoffCoefficient multiplies the interval after each attempt
	BackoffCoefficient float64

	// MaximumInterval caps the delay between attempts
	MaximumInterval time.Duration

	// MaximumAttempts is the total number of attempts, including the first
	MaximumAttempts int32
}

// DefaultPolicy returns a policy suitable for short read operations
func DefaultPolicy() *Policy {
	return &Policy{
		InitialInterval:    100 * time.Millisecond,
		BackoffCoefficient: 2.0,
		MaximumInterval:    2 * time.Second,
		MaximumAttempts:    3,
	}
}

// Executor handles the execution of operations with retries
type Executor struct {
	policy *Policy
	logger logging.Logger
}

// NewExecutor creates a new retry executor with the given policy
func NewExecutor(policy *Policy) *Executor {
	return &Executor{
		policy: policy,
		logger: logging.New(),
	}
}

// Execute executes the given operation with retries based on the policy
func (e *Executor) Execute(ctx context.Context, operation func() error) error {
	var lastErr error
	attempt := int32(0)
	currentInterval := e.policy.InitialInterval

	for attempt < e.policy.MaximumAttempts {
		select {
		case <-ctx.Done():
			e.logger.Debug(ctx, "Context cancelled during retry", map[string]interface{}{
				"attempt": attempt,
				"error":   ctx.Err(),
			})
			return ctx.Err()
		default:
			if err := operation(); err == nil {
				return nil
			} else {
				lastErr = err
				attempt++

				if attempt >= e.policy.MaximumAttempts {
					e.logger.Debug(ctx, "Maximum attempts reached", map[string]interface{}{
						"attempt": attempt,
						"error":   err.Error(),
					})
					break
				}

				// Calculate next backoff interval
				nextInterval := time.Duration(float64(currentInterval) * e.policy.BackoffCoefficient)
				if nextInterval > e.policy.MaximumInterval {
					nextInterval = e.policy.MaximumInterval
				}

				e.logger.Debug(ctx, "Operation failed, scheduling retry", map[string]interface{}{
					"attempt":       attempt,
					"error":         err.Error(),
					"next_interval": nextInterval,
				})

				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(currentInterval):
					currentInterval = nextInterval
				}
			}
		}
	}

	return lastErr
}
