package loop_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matkb/matkb/pkg/loop"
)

func TestStart(t *testing.T) {
	t.Run("it loops until Break", func(t *testing.T) {
		ctx := context.Background()

		got, err := loop.Start(ctx, 1, func(_ context.Context, value int) (int, loop.Next) {
			value += 1
			if 10 <= value {
				return value, loop.Break(nil)
			}
			return value, loop.Continue(0)
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 10 {
			t.Errorf("unexpected value: %d", got)
		}
	})

	t.Run("it breaks with the task's error", func(t *testing.T) {
		ctx := context.Background()
		expected := errors.New("fake error")

		got, err := loop.Start(ctx, 0, func(_ context.Context, value int) (int, loop.Next) {
			return value + 1, loop.Break(expected)
		})

		if !errors.Is(err, expected) {
			t.Errorf("unexpected error: %v", err)
		}
		if got != 1 {
			t.Errorf("the last value should be returned even on error: %d", got)
		}
	})

	t.Run("it does not start the task when ctx is already done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, err := loop.Start(ctx, 42, func(_ context.Context, value int) (int, loop.Next) {
			t.Fatal("task should not run")
			return value, loop.Break(nil)
		})

		if !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
		if got != 42 {
			t.Errorf("unexpected value: %d", got)
		}
	})

	t.Run("it stops while waiting for the interval when ctx is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		iterations := 0
		_, err := loop.Start(ctx, 0, func(_ context.Context, value int) (int, loop.Next) {
			iterations += 1
			cancel()
			return value, loop.Continue(time.Hour)
		})

		if !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
		if iterations != 1 {
			t.Errorf("unexpected iteration count: %d", iterations)
		}
	})
}
