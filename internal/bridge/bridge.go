// ABOUTME: One-shot completion primitive bridging callback-based store
// ABOUTME: operations into awaitable calls that settle exactly once.
package bridge

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Completion is a single-resolution awaitable. The first Resolve or Reject
// wins; later settlements are discarded and logged as a non-fatal integrity
// violation. A Completion must not be reused.
type Completion[T any] struct {
	mu      sync.Mutex
	done    chan struct{}
	settled bool
	value   T
	err     error
	log     *zap.Logger
}

// New creates an unsettled Completion. A nil logger defaults to a no-op.
func New[T any](log *zap.Logger) *Completion[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Completion[T]{done: make(chan struct{}), log: log}
}

// Resolve settles the completion with a value.
func (c *Completion[T]) Resolve(v T) {
	c.settle(v, nil)
}

// Reject settles the completion with an error.
func (c *Completion[T]) Reject(err error) {
	var zero T
	c.settle(zero, err)
}

// Callback adapts the completion to the store's (value, error) callback
// shape: an error rejects, otherwise the value resolves.
func (c *Completion[T]) Callback() func(T, error) {
	return func(v T, err error) {
		if err != nil {
			c.Reject(err)
			return
		}
		c.Resolve(v)
	}
}

func (c *Completion[T]) settle(v T, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.settled {
		// Double resume from the underlying callback. Discard, don't
		// re-raise; the first settlement already won.
		c.log.Warn("completion settled more than once; discarding",
			zap.Error(err))
		return
	}
	c.settled = true
	c.value = v
	c.err = err
	close(c.done)
}

// Await blocks until the completion settles or ctx is done. A ctx error
// abandons the result; the underlying store operation still runs to
// completion because the store offers no cancellation.
func (c *Completion[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-c.done:
		return c.value, c.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
