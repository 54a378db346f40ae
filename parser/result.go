package parser

import (
	"github.com/ava12/parsec"
	"github.com/ava12/parsec/source"
)

// Error codes used for parse-time failures:
const (
	// FailError is the code of failures produced by Fail.
	FailError = parsec.ParseErrors + iota

	// UnexpectedEoiError indicates that input ended while a character was required.
	UnexpectedEoiError

	// UnexpectedInputError indicates that the next character(s) or a parsed value did not match.
	UnexpectedInputError

	// ExpectedEoiError indicates that input continues where end of input was required.
	ExpectedEoiError

	// NoAlternativesError is returned by an ordered choice with no alternatives.
	NoAlternativesError

	// EmptyLoopError indicates that a repeated parser succeeded without consuming input.
	EmptyLoopError

	// BadNumberError indicates that a number literal cannot be represented.
	BadNumberError
)

// Unit is the value of parsers that produce nothing of interest.
type Unit struct{}

// Result is the outcome of a parser invocation: either a value or a failure.
// Failure keeps the offset it was reported at, line and column are computed on demand by Err.
type Result[T any] struct {
	value  T
	failed bool
	code   int
	msg    string
	src    *source.Source
	pos    int
}

// Success creates successful result.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure creates failed result positioned at current cursor offset.
func Failure[T any](c *source.Cursor, code int, msg string) Result[T] {
	return FailureAt[T](c, c.Offset(), code, msg)
}

// FailureAt creates failed result positioned at given offset.
func FailureAt[T any](c *source.Cursor, pos, code int, msg string) Result[T] {
	return Result[T]{failed: true, code: code, msg: msg, src: c.Source(), pos: pos}
}

// Propagate converts failed result to a result of another value type keeping the failure intact.
// Must not be called for successful results.
func Propagate[U, T any](r Result[T]) Result[U] {
	if !r.failed {
		panic(parsec.FormatError(parsec.ResultAccessError, "cannot propagate successful result"))
	}
	return Result[U]{failed: true, code: r.code, msg: r.msg, src: r.src, pos: r.pos}
}

func (r Result[T]) IsSuccess() bool {
	return !r.failed
}

func (r Result[T]) IsFailure() bool {
	return r.failed
}

// Value returns parsed value. Panics if r is a failure.
func (r Result[T]) Value() T {
	if r.failed {
		panic(parsec.FormatError(parsec.ResultAccessError, "failed result has no value: %s", r.Err()))
	}
	return r.value
}

// Message returns failure message. Panics if r is a success.
func (r Result[T]) Message() string {
	if !r.failed {
		panic(parsec.FormatError(parsec.ResultAccessError, "successful result has no failure message"))
	}
	return r.msg
}

// Code returns failure code or 0 for successful result.
func (r Result[T]) Code() int {
	return r.code
}

// Offset returns byte offset of the failure or 0 for successful result.
func (r Result[T]) Offset() int {
	return r.pos
}

// Err returns *parsec.Error with source name and position for failed result, nil for successful one.
func (r Result[T]) Err() error {
	if !r.failed {
		return nil
	}

	if r.src == nil {
		return parsec.NewError(r.code, r.msg, "", 0, 0)
	}
	return parsec.FormatErrorPos(source.NewPos(r.src, r.pos), r.code, r.msg)
}

// Get returns parsed value and nil or zero value and error returned by Err.
func (r Result[T]) Get() (T, error) {
	if r.failed {
		var zero T
		return zero, r.Err()
	}
	return r.value, nil
}
