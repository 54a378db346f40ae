// Package combine provides combinators building new parsers from existing ones.
//
// Ordered choice (Or, Choose) and repetition (Many) only backtrack over failures
// that consumed no input. A failure after partial consumption is returned as is,
// wrap the alternative in Try to get full backtracking.
package combine

import (
	"github.com/ava12/parsec"
	"github.com/ava12/parsec/parser"
	"github.com/ava12/parsec/source"
)

func checkParser[T any](p parser.Parser[T]) {
	if p == nil {
		parsec.PanicNilArgument("parser")
	}
}

// Try returns parser that restores cursor position if p fails, regardless of consumed input.
func Try[T any](p parser.Parser[T]) parser.Parser[T] {
	checkParser(p)

	return func(c *source.Cursor) parser.Result[T] {
		start := c.Offset()
		r := p(c)
		if r.IsFailure() {
			c.Seek(start)
		}
		return r
	}
}

// Eof returns parser that succeeds only at the end of input, it consumes nothing.
func Eof() parser.Parser[parser.Unit] {
	return func(c *source.Cursor) parser.Result[parser.Unit] {
		if c.AtEnd() {
			return parser.Success(parser.Unit{})
		}
		return parser.Failure[parser.Unit](c, parser.ExpectedEoiError, "Expected end of input")
	}
}

// Or returns parser trying a and then b.
// b is tried only if a fails without consuming input.
func Or[T any](a, b parser.Parser[T]) parser.Parser[T] {
	checkParser(a)
	checkParser(b)

	return func(c *source.Cursor) parser.Result[T] {
		start := c.Offset()
		r := a(c)
		if r.IsSuccess() || c.Offset() != start {
			return r
		}
		return b(c)
	}
}

// Choose is the n-ary form of Or, parsers are tried from left to right.
// Returns the result of the first parser that succeeds or fails after consuming input,
// or the failure of the last parser. Choose with no parsers always fails.
func Choose[T any](ps ...parser.Parser[T]) parser.Parser[T] {
	if len(ps) == 0 {
		return func(c *source.Cursor) parser.Result[T] {
			return parser.Failure[T](c, parser.NoAlternativesError, "No alternatives")
		}
	}

	for _, p := range ps {
		checkParser(p)
	}
	list := append([]parser.Parser[T](nil), ps...)

	return func(c *source.Cursor) parser.Result[T] {
		start := c.Offset()
		var r parser.Result[T]
		for _, p := range list {
			r = p(c)
			if r.IsSuccess() || c.Offset() != start {
				return r
			}
		}
		return r
	}
}

// Optional returns parser trying p and succeeding with def if p fails without consuming input.
func Optional[T any](p parser.Parser[T], def T) parser.Parser[T] {
	return Or(p, parser.Succeed(def))
}

// Between returns parser running open, p, and close in sequence and returning the value of p.
func Between[O, T, C any](open parser.Parser[O], p parser.Parser[T], close parser.Parser[C]) parser.Parser[T] {
	checkParser(open)
	checkParser(p)
	checkParser(close)

	return func(c *source.Cursor) parser.Result[T] {
		ro := open(c)
		if ro.IsFailure() {
			return parser.Propagate[T](ro)
		}

		r := p(c)
		if r.IsFailure() {
			return r
		}

		rc := close(c)
		if rc.IsFailure() {
			return parser.Propagate[T](rc)
		}
		return r
	}
}

// FollowedBy returns parser running p and then end, returning the value of p.
// Typically used with Eof to match the whole input.
func FollowedBy[T, U any](p parser.Parser[T], end parser.Parser[U]) parser.Parser[T] {
	checkParser(p)
	checkParser(end)

	return func(c *source.Cursor) parser.Result[T] {
		r := p(c)
		if r.IsFailure() {
			return r
		}

		re := end(c)
		if re.IsFailure() {
			return parser.Propagate[T](re)
		}
		return r
	}
}

// NotFollowedBy returns parser that succeeds without consuming input if p fails at current position.
// If p succeeds it fails with "Unexpected <value>" message.
// Cursor position is restored in both cases.
func NotFollowedBy[T any](p parser.Parser[T]) parser.Parser[parser.Unit] {
	try := Try(p)

	return func(c *source.Cursor) parser.Result[parser.Unit] {
		start := c.Offset()
		r := try(c)
		if r.IsFailure() {
			return parser.Success(parser.Unit{})
		}

		c.Seek(start)
		return parser.Unexpected[parser.Unit](r.Value())(c)
	}
}

// FollowedByNot returns parser running p and then NotFollowedBy(next), returning the value of p.
func FollowedByNot[T, U any](p parser.Parser[T], next parser.Parser[U]) parser.Parser[T] {
	return FollowedBy(p, NotFollowedBy(next))
}
