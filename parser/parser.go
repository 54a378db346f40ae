// Package parser defines the Parser and Result types, parse entry points, and sequencing primitives.
package parser

import (
	"fmt"
	"sync"

	"github.com/ava12/parsec"
	"github.com/ava12/parsec/source"
)

// Parser is a function scanning the cursor and returning either a value or a failure.
// A successful parser leaves the cursor past consumed input,
// a failed parser may or may not have consumed input, see combine.Or and combine.Try.
// Parsers are immutable and may be shared by concurrent parses.
type Parser[T any] func(c *source.Cursor) Result[T]

// Run parses text with p, starting from the first character.
// Does not require p to consume all input, use combine.Eof for that.
func Run[T any](p Parser[T], text string) Result[T] {
	return RunSource(p, source.NewString("", text))
}

// RunSource parses src with p, failure positions will refer to src name.
func RunSource[T any](p Parser[T], src *source.Source) Result[T] {
	return p(source.NewCursor(src))
}

// Succeed returns parser that always succeeds with value without consuming input.
func Succeed[T any](value T) Parser[T] {
	return func(*source.Cursor) Result[T] {
		return Success(value)
	}
}

// Fail returns parser that always fails with message without consuming input.
func Fail[T any](message string) Parser[T] {
	return func(c *source.Cursor) Result[T] {
		return Failure[T](c, FailError, message)
	}
}

// Describe formats value for failure messages, runes and strings are quoted.
func Describe(value any) string {
	switch v := value.(type) {
	case rune:
		return fmt.Sprintf("%q", string(v))
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}

// Unexpected returns parser that always fails with "Unexpected <value>" message without consuming input.
func Unexpected[T any](value any) Parser[T] {
	msg := "Unexpected " + Describe(value)
	return func(c *source.Cursor) Result[T] {
		return Failure[T](c, UnexpectedInputError, msg)
	}
}

// Map returns parser transforming successful value of p with f.
// Failures are passed unchanged.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	if p == nil {
		parsec.PanicNilArgument("parser")
	}
	if f == nil {
		parsec.PanicNilArgument("function")
	}

	return func(c *source.Cursor) Result[U] {
		r := p(c)
		if r.failed {
			return Propagate[U](r)
		}
		return Success(f(r.value))
	}
}

// Bind returns parser running p and then the parser returned by f for the value of p.
// Failure of p is returned without calling f.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	if p == nil {
		parsec.PanicNilArgument("parser")
	}
	if f == nil {
		parsec.PanicNilArgument("function")
	}

	return func(c *source.Cursor) Result[U] {
		r := p(c)
		if r.failed {
			return Propagate[U](r)
		}
		return f(r.value)(c)
	}
}

// Then returns parser running a and then b, the value of a is discarded.
func Then[T, U any](a Parser[T], b Parser[U]) Parser[U] {
	if a == nil || b == nil {
		parsec.PanicNilArgument("parser")
	}

	return func(c *source.Cursor) Result[U] {
		r := a(c)
		if r.failed {
			return Propagate[U](r)
		}
		return b(c)
	}
}

// Where returns parser that succeeds with the value of p only if pred holds for it.
// Otherwise it fails with "Unexpected <value>" at the position p started from;
// input consumed by p stays consumed.
func Where[T any](p Parser[T], pred func(T) bool) Parser[T] {
	if p == nil {
		parsec.PanicNilArgument("parser")
	}
	if pred == nil {
		parsec.PanicNilArgument("predicate")
	}

	return func(c *source.Cursor) Result[T] {
		start := c.Offset()
		r := p(c)
		if r.failed || pred(r.value) {
			return r
		}
		return FailureAt[T](c, start, UnexpectedInputError, "Unexpected "+Describe(r.value))
	}
}

// Lazy returns parser built by f on first use.
// Used for rules referring to themselves or to rules defined later.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	if f == nil {
		parsec.PanicNilArgument("function")
	}

	var (
		once sync.Once
		p    Parser[T]
	)
	return func(c *source.Cursor) Result[T] {
		once.Do(func() {
			p = f()
			if p == nil {
				parsec.PanicNilArgument("lazy parser")
			}
		})
		return p(c)
	}
}
