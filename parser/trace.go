package parser

import (
	"github.com/tliron/commonlog"

	"github.com/ava12/parsec"
	"github.com/ava12/parsec/source"
)

// TraceLogName is the name of the logger used by Trace.
const TraceLogName = "parsec.trace"

var traceLog = commonlog.GetLogger(TraceLogName)

// Trace returns parser logging entry and outcome of p at debug level.
// Does nothing but calling p unless debug level is enabled for TraceLogName logger.
func Trace[T any](name string, p Parser[T]) Parser[T] {
	if p == nil {
		parsec.PanicNilArgument("parser")
	}

	return func(c *source.Cursor) Result[T] {
		if !traceLog.AllowLevel(commonlog.Debug) {
			return p(c)
		}

		start := c.SourcePos()
		traceLog.Debugf("%d:%d: enter %s", start.Line(), start.Col(), name)
		r := p(c)
		end := c.SourcePos()
		if r.failed {
			traceLog.Debugf("%d:%d: %s failed: %s (consumed %d)", end.Line(), end.Col(), name, r.msg, end.Pos()-start.Pos())
		} else {
			traceLog.Debugf("%d:%d: %s matched %v", end.Line(), end.Col(), name, r.value)
		}
		return r
	}
}
