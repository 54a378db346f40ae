// Package source defines source text and the cursor used by parsers to scan it.
package source

import (
	"bytes"
	"sort"
	"unicode/utf8"

	"github.com/ava12/parsec"
)

// Source contains named input text and the index of line starts used to compute positions.
// Source is immutable and safe for concurrent use.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates new Source. content must not be modified afterwards.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

// NewString creates new Source from a string.
func NewString(name, text string) *Source {
	return New(name, []byte(text))
}

// Name returns source name, may be empty.
func (s *Source) Name() string {
	return s.name
}

// Content returns source text.
func (s *Source) Content() []byte {
	return s.content
}

// Len returns source length in bytes.
func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts byte offset to line and column numbers, both starting from 1.
// Columns count runes, not bytes. Offsets outside of source are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	var lineIndex int
	if pos < 0 {
		pos = 0
		lineIndex = 0
	} else if pos >= len(s.content) {
		pos = len(s.content)
		lineIndex = len(s.lineStarts) - 1
	} else {
		lineIndex = sort.SearchInts(s.lineStarts, pos+1) - 1
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Pos converts line and column numbers to byte offset, columns count runes.
// Returns 0 for non-positive numbers and clamps offset to the end of the line or source.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	if line > len(s.lineStarts) {
		return len(s.content)
	}

	pos := s.lineStarts[line-1]
	end := len(s.content)
	if line < len(s.lineStarts) {
		end = s.lineStarts[line] - 1
	}
	for ; col > 1 && pos < end; col-- {
		_, size := utf8.DecodeRune(s.content[pos:end])
		pos += size
	}
	return pos
}

// Pos is a position in source, implements parsec.SourcePos.
type Pos struct {
	src            *Source
	pos, line, col int
}

// NewPos creates position for given byte offset.
func NewPos(s *Source, pos int) Pos {
	res := Pos{src: s, pos: pos}
	if s != nil {
		res.line, res.col = s.LineCol(pos)
	}
	return res
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

// Pos returns byte offset.
func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}

// Cursor is the current position of a single parse in a Source.
// Cursor is mutable and must not be shared by concurrent parses.
type Cursor struct {
	src *Source
	pos int
}

// NewCursor creates a cursor at the start of s.
func NewCursor(s *Source) *Cursor {
	return &Cursor{src: s}
}

// Source returns the source being scanned.
func (c *Cursor) Source() *Source {
	return c.src
}

// Offset returns current byte offset.
func (c *Cursor) Offset() int {
	return c.pos
}

// AtEnd tells whether all input is consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.src.content)
}

// Peek returns the rune at current position without consuming it.
// Returns false if at end of input.
func (c *Cursor) Peek() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}

	r, _ := utf8.DecodeRune(c.src.content[c.pos:])
	return r, true
}

// Advance consumes and returns the rune at current position.
// Panics with parsec.CursorOverrunError if at end of input.
func (c *Cursor) Advance() rune {
	if c.AtEnd() {
		panic(parsec.FormatErrorPos(c.SourcePos(), parsec.CursorOverrunError, "cannot advance past end of input"))
	}

	r, size := utf8.DecodeRune(c.src.content[c.pos:])
	c.pos += size
	return r
}

// Skip consumes n bytes already matched by the caller, n must not split a rune.
// Panics with parsec.CursorOverrunError if less than n bytes remain.
func (c *Cursor) Skip(n int) {
	if n < 0 || n > len(c.src.content)-c.pos {
		panic(parsec.FormatErrorPos(c.SourcePos(), parsec.CursorOverrunError, "cannot skip %d bytes", n))
	}

	c.pos += n
}

// Seek restores a previously saved offset. Offset is clamped to source bounds.
// Intended for backtracking combinators only.
func (c *Cursor) Seek(pos int) {
	if pos <= 0 {
		c.pos = 0
	} else if pos > len(c.src.content) {
		c.pos = len(c.src.content)
	} else {
		c.pos = pos
	}
}

// SourcePos returns current position with line and column numbers.
func (c *Cursor) SourcePos() Pos {
	return NewPos(c.src, c.pos)
}

// ContentPos returns source content and current offset.
func (c *Cursor) ContentPos() ([]byte, int) {
	return c.src.content, c.pos
}
