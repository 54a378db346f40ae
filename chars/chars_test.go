package chars_test

import (
	"testing"

	"github.com/ava12/parsec"
	"github.com/ava12/parsec/chars"
	"github.com/ava12/parsec/internal/test"
	"github.com/ava12/parsec/parser"
	"github.com/ava12/parsec/source"
)

func cursor(text string) *source.Cursor {
	return source.NewCursor(source.NewString("", text))
}

type sample struct {
	input  string
	value  rune
	offset int
	msg    string
}

func checkSamples(t *testing.T, p parser.Parser[rune], samples []sample) {
	t.Helper()
	for i, s := range samples {
		c := cursor(s.input)
		r := p(c)
		if s.msg != "" {
			if r.IsSuccess() || r.Message() != s.msg {
				t.Errorf("sample #%d: expecting failure %q, got %v", i, s.msg, r.Err())
			}
		} else if r.IsFailure() || r.Value() != s.value {
			t.Errorf("sample #%d: expecting %q, got %v", i, s.value, r.Err())
		}
		if c.Offset() != s.offset {
			t.Errorf("sample #%d: expecting offset %d, got %d", i, s.offset, c.Offset())
		}
	}
}

func TestAny(t *testing.T) {
	checkSamples(t, chars.Any(), []sample{
		{"x", 'x', 1, ""},
		{"xyz", 'x', 1, ""},
		{"яз", 'я', 2, ""},
		{"", 0, 0, "Unexpected end of input"},
	})
	test.ExpectCode(t, parser.UnexpectedEoiError, parser.Run(chars.Any(), ""))
}

func TestSatisfy(t *testing.T) {
	isX := func(r rune) bool {
		return r == 'x'
	}
	checkSamples(t, chars.Satisfy(isX), []sample{
		{"x", 'x', 1, ""},
		{"y", 0, 0, `Unexpected "y"`},
		{"", 0, 0, "Unexpected end of input"},
	})

	test.ExpectPanicCode(t, parsec.NilArgumentError, func() {
		chars.Satisfy(nil)
	})
}

func TestChar(t *testing.T) {
	checkSamples(t, chars.Char('x'), []sample{
		{"x", 'x', 1, ""},
		{"xy", 'x', 1, ""},
		{"y", 0, 0, `Unexpected "y", expecting "x"`},
		{"", 0, 0, `Unexpected end of input, expecting "x"`},
	})
	checkSamples(t, chars.Not('x'), []sample{
		{"y", 'y', 1, ""},
		{"x", 0, 0, `Unexpected "x"`},
	})
}

func TestOneOf(t *testing.T) {
	checkSamples(t, chars.OneOf("abc"), []sample{
		{"a", 'a', 1, ""},
		{"c", 'c', 1, ""},
		{"d", 0, 0, `Unexpected "d"`},
		{"", 0, 0, "Unexpected end of input"},
	})
	checkSamples(t, chars.NoneOf("abc"), []sample{
		{"d", 'd', 1, ""},
		{"b", 0, 0, `Unexpected "b"`},
		{"", 0, 0, "Unexpected end of input"},
	})
}

func TestClasses(t *testing.T) {
	checkSamples(t, chars.WhiteSpace(), []sample{
		{" ", ' ', 1, ""},
		{"\t", '\t', 1, ""},
		{"\n", '\n', 1, ""},
		{"x", 0, 0, `Unexpected "x"`},
	})
	checkSamples(t, chars.Space(), []sample{
		{" ", ' ', 1, ""},
		{"\t", 0, 0, `Unexpected "\t", expecting " "`},
	})
	checkSamples(t, chars.Letter(), []sample{
		{"a", 'a', 1, ""},
		{"Ж", 'Ж', 2, ""},
		{"1", 0, 0, `Unexpected "1"`},
	})
	checkSamples(t, chars.Digit(), []sample{
		{"7", '7', 1, ""},
		{"a", 0, 0, `Unexpected "a"`},
	})
	checkSamples(t, chars.LetterOrDigit(), []sample{
		{"a", 'a', 1, ""},
		{"7", '7', 1, ""},
		{"_", 0, 0, `Unexpected "_"`},
	})
}

func TestEndOfLine(t *testing.T) {
	checkSamples(t, chars.EndOfLine(), []sample{
		{"\n", '\n', 1, ""},
		{"\r\n", '\n', 2, ""},
		{"\nx", '\n', 1, ""},
		{"\r", 0, 0, "Expected end of line"},
		{"\rx", 0, 0, "Expected end of line"},
		{"x", 0, 0, "Expected end of line"},
		{"", 0, 0, "Expected end of line"},
	})
}

func TestString(t *testing.T) {
	samples := []struct {
		input  string
		offset int
		msg    string
	}{
		{"foo", 3, ""},
		{"foobar", 3, ""},
		{"fo", 0, `Expected "foo"`},
		{"fob", 0, `Expected "foo"`},
		{"", 0, `Expected "foo"`},
	}

	p := chars.String("foo")
	for i, s := range samples {
		c := cursor(s.input)
		r := p(c)
		if s.msg == "" {
			if r.IsFailure() || r.Value() != "foo" {
				t.Errorf("sample #%d: expecting success, got %v", i, r.Err())
			}
		} else if r.IsSuccess() || r.Message() != s.msg {
			t.Errorf("sample #%d: expecting failure %q, got %v", i, s.msg, r.Err())
		}
		if c.Offset() != s.offset {
			t.Errorf("sample #%d: expecting offset %d, got %d", i, s.offset, c.Offset())
		}
	}
}

func TestRegexp(t *testing.T) {
	p := chars.Regexp("[a-z]+[0-9]*")

	c := cursor("abc12+")
	test.ExpectValue(t, "abc12", p(c))
	test.ExpectOffset(t, 5, c)

	c = cursor("x+abc")
	c.Skip(2)
	test.ExpectValue(t, "abc", p(c))

	c = cursor("12abc")
	test.ExpectMessage(t, "Expected /[a-z]+[0-9]*/", p(c))
	test.ExpectOffset(t, 0, c)

	test.ExpectMessage(t, "Expected /x*/", parser.Run(chars.Regexp("x*"), "y"))
	test.ExpectValue(t, "b", parser.Run(chars.Regexp("a|b"), "b"))
	test.ExpectFailure(t, parser.Run(chars.Regexp("a|b"), "xb"))

	test.ExpectPanicCode(t, parsec.BadPatternError, func() {
		chars.Regexp("[a-")
	})
}

func TestAsString(t *testing.T) {
	p := chars.AsString(parser.Map(chars.Any(), func(r rune) []rune {
		return []rune{r, r}
	}))
	test.ExpectValue(t, "яя", parser.Run(p, "я"))
}
