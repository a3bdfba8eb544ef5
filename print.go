package fixstr

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the package logger. It is a no-op logger unless one was
// installed with SetLogger.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger installs l as the package logger. A nil l restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// maxLine is the longest line Fprint writes before its newline, the
// capacity of a [Long].
const maxLine = 1020

// line holds maxLine bytes plus one, which is only reached by text longer
// than a Long and is replaced by the newline. The last byte is the NUL.
type line [maxLine + 1 + 1]byte

func (a *line) Bytes() []byte { return a[:] }

type lineTexter = Texter[String[line, *line], *String[line, *line]]

// scratch holds the texters behind Print and Fprint. Each call takes one
// for its exclusive use, clears it, and puts it back when done, so callers
// on different goroutines never share a buffer and storage is reused
// instead of reallocated.
var scratch = sync.Pool{
	New: func() any { return new(lineTexter) },
}

// Fprint formats args like [Texter.Print] followed by a newline and writes
// the line to w. Lines longer than a [Long] are truncated to its capacity
// but keep their newline.
func Fprint(w io.Writer, args ...any) (int, error) {
	t := scratch.Get().(*lineTexter)
	defer scratch.Put(t)
	t.Clear()
	t.Print(args...)
	if t.Len() > maxLine {
		t.Target().Resize(maxLine)
	}
	t.Byte('\n')
	n, err := w.Write(t.Bytes())
	if err != nil {
		Logger().Debug("fixstr: print failed", zap.Int("bytes", t.Len()), zap.Error(err))
	}
	return n, err
}

// Print writes args and a newline to standard output. It is safe for
// concurrent use.
func Print(args ...any) {
	_, _ = Fprint(os.Stdout, args...)
}

// PrintWith prints args and returns r, for logging inside expressions.
//
//	return fixstr.PrintWith(err, "open failed: ", err)
func PrintWith[R any](r R, args ...any) R {
	Print(args...)
	return r
}
