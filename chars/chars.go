// Package chars provides primitive parsers matching single characters and literals.
// All of them fail without consuming input on mismatch.
package chars

import (
	"regexp"
	"unicode"

	"github.com/ava12/parsec"
	"github.com/ava12/parsec/internal/runes"
	"github.com/ava12/parsec/parser"
	"github.com/ava12/parsec/source"
)

func endOfInput[T any](c *source.Cursor) parser.Result[T] {
	return parser.Failure[T](c, parser.UnexpectedEoiError, "Unexpected end of input")
}

func unexpected[T any](c *source.Cursor, r rune) parser.Result[T] {
	return parser.Failure[T](c, parser.UnexpectedInputError, "Unexpected "+parser.Describe(r))
}

// Any returns parser matching any character.
func Any() parser.Parser[rune] {
	return func(c *source.Cursor) parser.Result[rune] {
		if c.AtEnd() {
			return endOfInput[rune](c)
		}
		return parser.Success(c.Advance())
	}
}

// Satisfy returns parser matching a character for which pred holds.
// Panics with parsec.NilArgumentError if pred is nil.
func Satisfy(pred func(rune) bool) parser.Parser[rune] {
	if pred == nil {
		parsec.PanicNilArgument("predicate")
	}

	return func(c *source.Cursor) parser.Result[rune] {
		r, ok := c.Peek()
		if !ok {
			return endOfInput[rune](c)
		}
		if !pred(r) {
			return unexpected[rune](c, r)
		}
		return parser.Success(c.Advance())
	}
}

// Char returns parser matching character x.
func Char(x rune) parser.Parser[rune] {
	expected := ", expecting " + parser.Describe(x)
	return func(c *source.Cursor) parser.Result[rune] {
		r, ok := c.Peek()
		if !ok {
			return parser.Failure[rune](c, parser.UnexpectedEoiError, "Unexpected end of input"+expected)
		}
		if r != x {
			return parser.Failure[rune](c, parser.UnexpectedInputError, "Unexpected "+parser.Describe(r)+expected)
		}
		return parser.Success(c.Advance())
	}
}

// Not returns parser matching any character except x.
func Not(x rune) parser.Parser[rune] {
	return Satisfy(func(r rune) bool {
		return r != x
	})
}

// OneOf returns parser matching any character of set.
func OneOf(set string) parser.Parser[rune] {
	rs := runes.FromString(set)
	return Satisfy(rs.Contains)
}

// NoneOf returns parser matching any character not belonging to set.
func NoneOf(set string) parser.Parser[rune] {
	rs := runes.FromString(set)
	return Satisfy(func(r rune) bool {
		return !rs.Contains(r)
	})
}

// WhiteSpace returns parser matching a single whitespace character as defined by unicode.IsSpace.
func WhiteSpace() parser.Parser[rune] {
	return Satisfy(unicode.IsSpace)
}

// Space returns parser matching the space character.
func Space() parser.Parser[rune] {
	return Char(' ')
}

// Letter returns parser matching a Unicode letter.
func Letter() parser.Parser[rune] {
	return Satisfy(unicode.IsLetter)
}

// Digit returns parser matching a decimal digit.
func Digit() parser.Parser[rune] {
	return Satisfy(func(r rune) bool {
		return r >= '0' && r <= '9'
	})
}

// LetterOrDigit returns parser matching a Unicode letter or digit.
func LetterOrDigit() parser.Parser[rune] {
	return Satisfy(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

// EndOfLine returns parser matching "\n" or "\r\n", both yield '\n'.
func EndOfLine() parser.Parser[rune] {
	return func(c *source.Cursor) parser.Result[rune] {
		content, pos := c.ContentPos()
		switch {
		case pos < len(content) && content[pos] == '\n':
			c.Skip(1)
		case pos+1 < len(content) && content[pos] == '\r' && content[pos+1] == '\n':
			c.Skip(2)
		default:
			return parser.Failure[rune](c, parser.UnexpectedInputError, "Expected end of line")
		}
		return parser.Success('\n')
	}
}

// String returns parser matching literal text as a whole.
// On mismatch the cursor is left where it was.
func String(text string) parser.Parser[string] {
	expected := "Expected " + parser.Describe(text)
	return func(c *source.Cursor) parser.Result[string] {
		content, pos := c.ContentPos()
		if len(content)-pos < len(text) || string(content[pos:pos+len(text)]) != text {
			return parser.Failure[string](c, parser.UnexpectedInputError, expected)
		}

		c.Skip(len(text))
		return parser.Success(text)
	}
}

// Regexp returns parser matching expr at current position and yielding matched text.
// Empty matches are failures. Panics with parsec.BadPatternError if expr cannot be compiled.
func Regexp(expr string) parser.Parser[string] {
	re, e := regexp.Compile("^(?:" + expr + ")")
	if e != nil {
		panic(parsec.FormatError(parsec.BadPatternError, "incorrect RegExp %s (%s)", expr, e.Error()))
	}

	expected := "Expected /" + expr + "/"
	return func(c *source.Cursor) parser.Result[string] {
		content, pos := c.ContentPos()
		match := re.FindIndex(content[pos:])
		if len(match) == 0 || match[1] == 0 {
			return parser.Failure[string](c, parser.UnexpectedInputError, expected)
		}

		c.Skip(match[1])
		return parser.Success(string(content[pos : pos+match[1]]))
	}
}

// AsString converts a rune slice parser to a string parser.
func AsString(p parser.Parser[[]rune]) parser.Parser[string] {
	return parser.Map(p, func(rs []rune) string {
		return string(rs)
	})
}
