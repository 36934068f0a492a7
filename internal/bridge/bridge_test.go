// ABOUTME: Tests for the one-shot completion: settle-once, double-resume
// ABOUTME: discard, and context-abandoned awaits.
package bridge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestResolveThenAwait(t *testing.T) {
	c := New[int](nil)
	go c.Resolve(42)

	got, err := c.Await(context.Background())
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if got != 42 {
		t.Errorf("Await = %d, want 42", got)
	}
}

func TestRejectThenAwait(t *testing.T) {
	boom := errors.New("boom")
	c := New[int](nil)
	go c.Reject(boom)

	_, err := c.Await(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("Await error = %v, want boom", err)
	}
}

func TestDoubleResumeDiscarded(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := New[int](zap.New(core))

	c.Resolve(1)
	c.Resolve(2)
	c.Reject(errors.New("late failure"))

	got, err := c.Await(context.Background())
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if got != 1 {
		t.Errorf("Await = %d, want first resolution 1", got)
	}

	// The extra settlements are logged, not re-raised.
	if n := logs.Len(); n != 2 {
		t.Errorf("logged %d integrity warnings, want 2", n)
	}
}

func TestConcurrentResolveSettlesOnce(t *testing.T) {
	c := New[int](nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			c.Resolve(v)
		}(i)
	}
	wg.Wait()

	first, err := c.Await(context.Background())
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	// Any one value may win; a second await must observe the same one.
	again, _ := c.Await(context.Background())
	if again != first {
		t.Errorf("second Await = %d, want %d", again, first)
	}
}

func TestAwaitAbandonedByContext(t *testing.T) {
	c := New[int](nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Await(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Await error = %v, want context.Canceled", err)
	}

	// The underlying operation still settles; the result is simply
	// discarded by the caller, not cancelled.
	c.Resolve(7)
	got, err := c.Await(context.Background())
	if err != nil || got != 7 {
		t.Errorf("late Await = %d, %v; want 7, nil", got, err)
	}
}

func TestCallbackAdapter(t *testing.T) {
	c := New[string](nil)
	cb := c.Callback()
	cb("ok", nil)

	got, err := c.Await(context.Background())
	if err != nil || got != "ok" {
		t.Errorf("Await = %q, %v; want ok, nil", got, err)
	}

	c2 := New[string](nil)
	cb2 := c2.Callback()
	cb2("", errors.New("store failure"))
	if _, err := c2.Await(context.Background()); err == nil {
		t.Error("Await should fail after error callback")
	}
}

func TestAwaitBlocksUntilSettled(t *testing.T) {
	c := New[int](nil)
	go func() {
		time.Sleep(10 * time.Millisecond)
		c.Resolve(5)
	}()

	got, err := c.Await(context.Background())
	if err != nil || got != 5 {
		t.Errorf("Await = %d, %v; want 5, nil", got, err)
	}
}
