/*
Package parsec is a general-purpose parser combinator library.

Consists of subpackages:
  - source: defines source text, source positions, and the cursor a parse runs against;
  - parser: defines Parser and Result types, entry points, and sequencing (Map, Bind);
  - combine: higher-order combinators (Or, Choose, Many, Between, Try, NotFollowedBy, ...);
  - chars: single-character and literal matchers;
  - tokens: lexeme-level helpers skipping trailing whitespace;
  - numeric: number literal parsers.

Typical usage is:

1. Describe grammar rules as Go functions or variables combining primitives from chars
with combinators from combine. A rule that refers to itself (or to a rule defined later)
is wrapped in parser.Lazy.

2. Anchor the root rule with combine.FollowedBy(root, combine.Eof()) if the whole input must match.

3. Run the root parser with parser.Run or parser.RunSource and inspect the Result.

Parser values are immutable and may be shared by concurrent parses,
each parse owns its own source.Cursor.
*/
package parsec

import (
	"fmt"
)

// Error classes, each class contains up to 99 error codes:
const (
	ParseErrors = 1   // used by parser, combine, chars, tokens, numeric
	UsageErrors = 101 // construction-time misuse, reported by panics
)

// Error codes for construction-time misuse:
const (
	// NilArgumentError indicates that a required function or parser argument is nil.
	NilArgumentError = UsageErrors + iota

	// BadPatternError indicates that a regular expression cannot be compiled.
	BadPatternError

	// CursorOverrunError indicates an attempt to advance a cursor past the end of input.
	CursorOverrunError

	// ResultAccessError indicates reading the value of a failed result or the message of a successful one.
	ResultAccessError
)

// Error is the error type used by parsec subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message without source name and position information.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source or 0.
	Line int

	// Col contains column number in source or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
func NewError(code int, msg, name string, line, col int) *Error {
	return &Error{code, msg, name, line, col}
}

// Error returns Error.Message followed by source name and position if provided (non-zero).
func (e *Error) Error() string {
	msg := e.Message
	if e.SourceName != "" {
		msg += " in " + e.SourceName
	}
	if e.Line != 0 && e.Col != 0 {
		msg += fmt.Sprintf(" at line %d col %d", e.Line, e.Col)
	}
	return msg
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}

// PanicNilArgument panics with NilArgumentError naming the missing argument.
// Used by parser constructors to report misuse at construction time.
func PanicNilArgument(name string) {
	panic(FormatError(NilArgumentError, "%s must not be nil", name))
}
