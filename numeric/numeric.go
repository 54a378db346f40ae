// Package numeric provides parsers for decimal number literals.
package numeric

import (
	"strconv"

	"github.com/ava12/parsec/chars"
	"github.com/ava12/parsec/parser"
	"github.com/ava12/parsec/source"
)

const (
	intExpr    = `-?[0-9]+`
	ufloatExpr = `[0-9]+(?:\.[0-9]+)?(?:[Ee][-+]?[0-9]+)?`
)

func convert[T any](p parser.Parser[string], conv func(string) (T, error)) parser.Parser[T] {
	return func(c *source.Cursor) parser.Result[T] {
		start := c.Offset()
		r := p(c)
		if r.IsFailure() {
			return parser.Propagate[T](r)
		}

		x, e := conv(r.Value())
		if e != nil {
			return parser.FailureAt[T](c, start, parser.BadNumberError, "Bad number "+parser.Describe(r.Value()))
		}
		return parser.Success(x)
	}
}

// Int returns parser matching optional minus sign followed by decimal digits.
// Fails with parser.BadNumberError if the value does not fit int.
func Int() parser.Parser[int] {
	return convert(chars.Regexp(intExpr), strconv.Atoi)
}

// UnsignedFloat returns parser matching decimal digits with optional fraction and exponent.
func UnsignedFloat() parser.Parser[float64] {
	return convert(chars.Regexp(ufloatExpr), parseFloat)
}

// Float is like UnsignedFloat but accepts optional minus sign.
func Float() parser.Parser[float64] {
	return convert(chars.Regexp("-?"+ufloatExpr), parseFloat)
}

func parseFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
