// Package tokens provides lexeme-level parsers skipping whitespace after tokens.
package tokens

import (
	"github.com/ava12/parsec/chars"
	"github.com/ava12/parsec/combine"
	"github.com/ava12/parsec/parser"
)

var spaces = combine.SkipMany(chars.WhiteSpace())

// Spaces returns parser skipping zero or more whitespace characters.
func Spaces() parser.Parser[parser.Unit] {
	return spaces
}

// Lexeme returns parser running p and then skipping trailing whitespace, yields the value of p.
func Lexeme[T any](p parser.Parser[T]) parser.Parser[T] {
	return combine.FollowedBy(p, spaces)
}

// Symbol returns parser matching character x followed by optional whitespace.
func Symbol(x rune) parser.Parser[rune] {
	return Lexeme(chars.Char(x))
}

// Keyword returns parser matching literal text followed by optional whitespace.
func Keyword(text string) parser.Parser[string] {
	return Lexeme(chars.String(text))
}
