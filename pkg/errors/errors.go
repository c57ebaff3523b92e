// Error wrapper annotated with the location where it was wrapped.
//
// Usage:
//
// ```
// wrapped := xe.Wrap(err)
// ```
//
// The returned error records filename, line and function name of the
// wrapping site. Wrapped errors nest, so reading a message and splitting
// it at "<-" gives the chain of places the error passed through.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

type ErrAt struct {
	file string
	line int
	fn   string
	note string
	err  error
}

func (e *ErrAt) File() string {
	return e.file
}

func (e *ErrAt) Line() int {
	return e.line
}

func (e *ErrAt) Error() string {
	if e.note == "" {
		return fmt.Sprintf(`@ %s "%s" l%d <- %s`, e.fn, e.file, e.line, e.err.Error())
	}
	return fmt.Sprintf(`@ %s "%s" l%d (%s) <- %s`, e.fn, e.file, e.line, e.note, e.err.Error())
}

func (e *ErrAt) Unwrap() error {
	return e.err
}

// New creates a fresh error knowing where it was born.
func New(text string) error {
	return wrap("", errors.New(text), 1)
}

// Wrap marks err with the caller's location.
func Wrap(err error) error {
	return wrap("", err, 1)
}

// WrapWithNote is Wrap with a short annotation in the message.
func WrapWithNote(note string, err error) error {
	return wrap(note, err, 1)
}

func wrap(note string, err error, depth int) error {
	pc, file, line, ok := runtime.Caller(depth + 1)
	fn := "(unknown func)"
	if !ok {
		file = "?"
		line = -1
	}
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}

	return &ErrAt{file: file, line: line, fn: fn, note: note, err: err}
}
