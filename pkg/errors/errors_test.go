package errors_test

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	xe "github.com/matkb/matkb/pkg/errors"
)

type rootErr struct{}

func (rootErr) Error() string {
	return "error type for test"
}

func makeError(message string) error {
	return xe.New(message)
}

func TestNew(t *testing.T) {
	t.Run("it knows the location where it is created", func(t *testing.T) {
		testee := makeError("test error")
		message := testee.Error()

		_, thisFile, _, _ := runtime.Caller(0)

		if !strings.Contains(message, "makeError") {
			t.Errorf("it does not know function name: %s", message)
		}
		if !strings.Contains(message, thisFile) {
			t.Errorf("it does not know file (%s): %s", thisFile, message)
		}
	})
}

func TestWrap(t *testing.T) {
	t.Run("it supports the errors protocol", func(t *testing.T) {
		root := rootErr{}

		err := xe.Wrap(
			fmt.Errorf("%w", fmt.Errorf("%w", root)),
		)

		if !errors.Is(err, root) {
			t.Error("it does not support unwrapping.")
		}
	})

	t.Run("WrapWithNote puts the note into the message", func(t *testing.T) {
		err := xe.WrapWithNote("while testing", errors.New("inner"))
		if !strings.Contains(err.Error(), "while testing") {
			t.Errorf("note is lost: %s", err.Error())
		}
	})
}
