package combine

import (
	"github.com/ava12/parsec/parser"
	"github.com/ava12/parsec/source"
)

// many runs p until it fails, appending values to items.
// Zero-width failure ends the loop successfully, failure after consuming input is returned.
func many[T any](p parser.Parser[T], c *source.Cursor, items []T) parser.Result[[]T] {
	for {
		start := c.Offset()
		r := p(c)
		if r.IsFailure() {
			if c.Offset() != start {
				return parser.Propagate[[]T](r)
			}
			return parser.Success(items)
		}

		if c.Offset() == start {
			return parser.Failure[[]T](c, parser.EmptyLoopError, "Repeated parser consumed no input")
		}
		items = append(items, r.Value())
	}
}

// Many returns parser applying p zero or more times and collecting values.
// Stops at the first failure of p that consumed no input, this failure is discarded.
// Failure of p after consuming input is returned, partial results are dropped.
// Fails with parser.EmptyLoopError if p succeeds without consuming input.
func Many[T any](p parser.Parser[T]) parser.Parser[[]T] {
	checkParser(p)

	return func(c *source.Cursor) parser.Result[[]T] {
		return many(p, c, []T{})
	}
}

// Many1 is like Many but requires at least one successful application of p.
func Many1[T any](p parser.Parser[T]) parser.Parser[[]T] {
	checkParser(p)

	return func(c *source.Cursor) parser.Result[[]T] {
		r := p(c)
		if r.IsFailure() {
			return parser.Propagate[[]T](r)
		}
		return many(p, c, []T{r.Value()})
	}
}

// SkipMany is like Many but discards values.
func SkipMany[T any](p parser.Parser[T]) parser.Parser[parser.Unit] {
	checkParser(p)

	return func(c *source.Cursor) parser.Result[parser.Unit] {
		for {
			start := c.Offset()
			r := p(c)
			if r.IsFailure() {
				if c.Offset() != start {
					return parser.Propagate[parser.Unit](r)
				}
				return parser.Success(parser.Unit{})
			}

			if c.Offset() == start {
				return parser.Failure[parser.Unit](c, parser.EmptyLoopError, "Repeated parser consumed no input")
			}
		}
	}
}

// SepBy returns parser matching zero or more occurrences of p separated by sep.
// A matched separator must be followed by p.
func SepBy[T, S any](p parser.Parser[T], sep parser.Parser[S]) parser.Parser[[]T] {
	return Or(SepBy1(p, sep), parser.Succeed([]T{}))
}

// SepBy1 returns parser matching one or more occurrences of p separated by sep.
func SepBy1[T, S any](p parser.Parser[T], sep parser.Parser[S]) parser.Parser[[]T] {
	checkParser(p)
	checkParser(sep)
	next := parser.Then(sep, p)

	return func(c *source.Cursor) parser.Result[[]T] {
		r := p(c)
		if r.IsFailure() {
			return parser.Propagate[[]T](r)
		}
		return many(next, c, []T{r.Value()})
	}
}

// ChainL1 returns parser matching one or more occurrences of p separated by op
// and combining values left to right with functions returned by op.
func ChainL1[T any](p parser.Parser[T], op parser.Parser[func(T, T) T]) parser.Parser[T] {
	checkParser(p)
	checkParser(op)

	return func(c *source.Cursor) parser.Result[T] {
		r := p(c)
		if r.IsFailure() {
			return r
		}

		acc := r.Value()
		for {
			start := c.Offset()
			ro := op(c)
			if ro.IsFailure() {
				if c.Offset() != start {
					return parser.Propagate[T](ro)
				}
				return parser.Success(acc)
			}

			rr := p(c)
			if rr.IsFailure() {
				return rr
			}
			acc = ro.Value()(acc, rr.Value())
		}
	}
}
