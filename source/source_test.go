package source

import (
	"strconv"
	"testing"

	"github.com/ava12/parsec"
)

type result struct {
	pos, line, col int
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{100, 1, 1},
			{-1, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{100, 2, 1},
		},
		"0\n2\n4\n6789abcde\ng\ni\n": {
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{7, 4, 2},
			{14, 4, 9},
			{19, 6, 2},
			{20, 7, 1},
			{9, 4, 4},
			{5, 3, 2},
		},
		"яз\nx": {
			{2, 1, 2},
			{4, 1, 3},
			{5, 2, 1},
		},
	}

	for text, results := range samples {
		source := NewString("", text)
		for _, res := range results {
			l, c := source.LineCol(res.pos)
			if l != res.line || c != res.col {
				t.Errorf("sample %q: expected %v, got line: %d, col: %d", text, res, l, c)
			}
		}
	}
}

func TestSourcePos(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 0, 1},
			{0, 1, 0},
			{0, 1, 1},
			{0, 1, 2},
			{0, 2, 1},
		},
		"\n": {
			{0, 1, 1},
			{0, 1, 2},
			{1, 2, 1},
			{1, 3, 1},
		},
		"hello\nworld\n": {
			{0, 1, 1},
			{1, 1, 2},
			{6, 2, 1},
			{7, 2, 2},
			{11, 2, 10},
			{12, 3, 1},
			{12, 4, 1},
		},
		"яx\nhello\nworld": {
			{0, 1, 1},
			{2, 1, 2},
			{3, 1, 3},
			{3, 1, 9},
			{4, 2, 1},
			{9, 2, 10},
			{12, 3, 3},
			{15, 3, 20},
		},
	}

	for text, results := range samples {
		source := NewString("", text)
		for _, res := range results {
			p := source.Pos(res.line, res.col)
			if p != res.pos {
				t.Errorf("sample %q: expected %v, got pos: %d", text, res, p)
			}
		}
	}
}

func TestSourcePosRoundTrip(t *testing.T) {
	for _, text := range []string{"", "abc", "яз\nx", "\n\nё\r\nжук\n"} {
		source := NewString("", text)
		for pos := range text {
			line, col := source.LineCol(pos)
			if p := source.Pos(line, col); p != pos {
				t.Errorf("sample %q: offset %d -> %d:%d -> %d", text, pos, line, col, p)
			}
		}
	}
}

func TestCursorAdvance(t *testing.T) {
	c := NewCursor(NewString("", "aяb"))
	assert(t, !c.AtEnd(), "expecting no EoI")

	r, ok := c.Peek()
	assert(t, ok && r == 'a', "expecting a, got "+string(r))
	assert(t, c.Offset() == 0, "Peek must not advance")

	assert(t, c.Advance() == 'a', "expecting a")
	assert(t, c.Advance() == 'я', "expecting я")
	assert(t, c.Offset() == 3, "expecting pos=3, got "+strconv.Itoa(c.Offset()))
	assert(t, c.Advance() == 'b', "expecting b")
	assert(t, c.AtEnd(), "expecting EoI")

	_, ok = c.Peek()
	assert(t, !ok, "Peek must fail at EoI")
}

func TestCursorAdvancePastEnd(t *testing.T) {
	c := NewCursor(NewString("sample", "x"))
	c.Advance()

	defer func() {
		e, valid := recover().(*parsec.Error)
		if !valid || e.Code != parsec.CursorOverrunError {
			t.Fatalf("expecting CursorOverrunError panic, got %v", e)
		}
		if e.SourceName != "sample" || e.Line != 1 || e.Col != 2 {
			t.Fatalf("unexpected error position: %s", e)
		}
	}()
	c.Advance()
}

func TestCursorSeek(t *testing.T) {
	c := NewCursor(NewString("", "foo"))
	c.Seek(4)
	assert(t, c.Offset() == 3, "expecting pos=3, got "+strconv.Itoa(c.Offset()))
	assert(t, c.AtEnd(), "expecting EoI")

	c.Seek(2)
	assert(t, c.Offset() == 2, "expecting pos=2, got "+strconv.Itoa(c.Offset()))
	assert(t, !c.AtEnd(), "expecting no EoI")

	c.Seek(-1)
	assert(t, c.Offset() == 0, "expecting pos=0, got "+strconv.Itoa(c.Offset()))
}

func TestCursorSkip(t *testing.T) {
	c := NewCursor(NewString("sample", "aяb"))
	c.Skip(3)
	assert(t, c.Offset() == 3, "expecting pos=3, got "+strconv.Itoa(c.Offset()))
	c.Skip(0)
	assert(t, c.Offset() == 3, "expecting pos=3, got "+strconv.Itoa(c.Offset()))

	defer func() {
		e, valid := recover().(*parsec.Error)
		if !valid || e.Code != parsec.CursorOverrunError {
			t.Fatalf("expecting CursorOverrunError panic, got %v", e)
		}
		assert(t, c.Offset() == 3, "failed Skip must not move cursor")
	}()
	c.Skip(2)
}

func TestCursorSourcePos(t *testing.T) {
	c := NewCursor(NewString("name", "ab\ncd"))
	c.Seek(4)
	p := c.SourcePos()
	assert(t, p.Pos() == 4, "expecting pos=4")
	assert(t, p.Line() == 2 && p.Col() == 2, "expecting line 2 col 2")
	assert(t, p.SourceName() == "name", "expecting name, got "+p.SourceName())

	content, pos := c.ContentPos()
	assert(t, string(content[pos:]) == "d", "expecting d, got "+string(content[pos:]))
}

func assert(t *testing.T, flag bool, message string) {
	if !flag {
		if message == "" {
			t.Fail()
		} else {
			t.Fatal(message)
		}
	}
}
