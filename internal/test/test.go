package test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/ava12/parsec"
	"github.com/ava12/parsec/parser"
	"github.com/ava12/parsec/source"
)

func fatalf(t *testing.T, message string, params ...any) {
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	_, thisFile, _, _ := runtime.Caller(0)
	file := thisFile
	line := 0
	for i := 2; file == thisFile; i++ {
		_, file, line, _ = runtime.Caller(i)
	}
	t.Fatalf("%s at %s:%d", message, file, line)
}

func Assert(t *testing.T, cond bool, message string, params ...any) {
	if !cond {
		fatalf(t, message, params...)
	}
}

func Expect(t *testing.T, cond bool, expected, got any) {
	if !cond {
		fatalf(t, "expecting %v, got %v", expected, got)
	}
}

func ExpectBool(t *testing.T, expected, got bool) {
	Expect(t, expected == got, expected, got)
}

func ExpectInt(t *testing.T, expected, got int) {
	Expect(t, expected == got, expected, got)
}

func ExpectErrorCode(t *testing.T, expected int, e error) {
	if e != nil {
		ee, valid := e.(*parsec.Error)
		if valid && ee.Code == expected {
			return
		}
	}

	fatalf(t, "expecting error code %d, got %v", expected, e)
}

// ExpectPanicCode runs f and checks that it panics with *parsec.Error having expected code.
func ExpectPanicCode(t *testing.T, expected int, f func()) {
	var got any
	func() {
		defer func() {
			got = recover()
		}()
		f()
	}()

	e, valid := got.(*parsec.Error)
	if !valid || e.Code != expected {
		fatalf(t, "expecting panic with error code %d, got %v", expected, got)
	}
}

func ExpectValue[T comparable](t *testing.T, expected T, r parser.Result[T]) {
	if r.IsFailure() {
		fatalf(t, "expecting %v, got failure: %s", expected, r.Message())
	}
	Expect(t, expected == r.Value(), expected, r.Value())
}

func ExpectSuccess[T any](t *testing.T, r parser.Result[T]) {
	if r.IsFailure() {
		fatalf(t, "expecting success, got failure: %s", r.Message())
	}
}

func ExpectFailure[T any](t *testing.T, r parser.Result[T]) {
	if r.IsSuccess() {
		fatalf(t, "expecting failure, got %v", r.Value())
	}
}

func ExpectMessage[T any](t *testing.T, expected string, r parser.Result[T]) {
	ExpectFailure(t, r)
	Expect(t, expected == r.Message(), expected, r.Message())
}

func ExpectCode[T any](t *testing.T, expected int, r parser.Result[T]) {
	ExpectFailure(t, r)
	Expect(t, expected == r.Code(), expected, r.Code())
}

// ExpectOffset checks current cursor offset, i.e. how much input was consumed.
func ExpectOffset(t *testing.T, expected int, c *source.Cursor) {
	if c.Offset() != expected {
		fatalf(t, "expecting cursor at %d, got %d", expected, c.Offset())
	}
}
