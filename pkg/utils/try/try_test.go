package try_test

import (
	"errors"
	"testing"

	"github.com/matkb/matkb/pkg/utils/try"
)

type fakeFataler struct {
	called bool
	args   []any
}

func (f *fakeFataler) Fatal(args ...any) {
	f.called = true
	f.args = args
}

func TestTo(t *testing.T) {
	t.Run("ok Either passes the value through", func(t *testing.T) {
		testee := try.To(42, nil)

		val, err := testee.Get()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if val != 42 {
			t.Errorf("unexpected value: %d", val)
		}
		if got := testee.OrDefault(-1); got != 42 {
			t.Errorf("OrDefault should pass the value: %d", got)
		}
	})

	t.Run("no-good Either holds the error", func(t *testing.T) {
		expected := errors.New("fake error")
		testee := try.To(0, expected)

		if _, err := testee.Get(); !errors.Is(err, expected) {
			t.Errorf("unexpected error: %v", err)
		}
		if got := testee.OrDefault(-1); got != -1 {
			t.Errorf("OrDefault should fall back: %d", got)
		}

		ftl := &fakeFataler{}
		testee.OrFatal(ftl)
		if !ftl.called {
			t.Error("OrFatal should call Fatal")
		}
	})
}

func TestMap(t *testing.T) {
	t.Run("it converts ok value", func(t *testing.T) {
		testee := try.Map(try.To(21, nil), func(v int) int { return v * 2 })
		if got := testee.OrFatal(t); got != 42 {
			t.Errorf("unexpected value: %d", got)
		}
	})

	t.Run("it propagates error", func(t *testing.T) {
		expected := errors.New("fake error")
		testee := try.Map(try.To(0, expected), func(v int) int { return v * 2 })
		if _, err := testee.Get(); !errors.Is(err, expected) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
