package fixstr_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bjaus/fixstr"
)

var errWrite = errors.New("write failed")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFprint(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n, err := fixstr.Fprint(&buf, "Radius is ", fixstr.Fixed[float64]{Precision: 2, Value: 189.887})
	require.NoError(t, err)
	assert.Equal(t, "Radius is 189.89\n", buf.String())
	assert.Equal(t, buf.Len(), n)
}

func TestFprintTruncatedKeepsNewline(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	_, err := fixstr.Fprint(&buf, strings.Repeat("x", 5000))
	require.NoError(t, err)

	var l fixstr.Long
	assert.Equal(t, l.Cap()+1, buf.Len())
	assert.True(t, strings.HasSuffix(buf.String(), "x\n"))
}

func TestFprintLineLengths(t *testing.T) {
	t.Parallel()
	var l fixstr.Long
	tests := map[string]struct {
		n    int
		want int
	}{
		"short":         {n: 10, want: 10},
		"below long":    {n: l.Cap() - 1, want: l.Cap() - 1},
		"exactly long":  {n: l.Cap(), want: l.Cap()},
		"one past long": {n: l.Cap() + 1, want: l.Cap()},
		"far past long": {n: 3 * l.Cap(), want: l.Cap()},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			text := strings.Repeat("y", tt.n-1) + "z"
			var buf bytes.Buffer
			n, err := fixstr.Fprint(&buf, text)
			require.NoError(t, err)
			assert.Equal(t, tt.want+1, n)
			assert.Equal(t, text[:tt.want]+"\n", buf.String())
		})
	}
}

func TestFprintReusesScratch(t *testing.T) {
	t.Parallel()
	var first, second bytes.Buffer
	_, err := fixstr.Fprint(&first, "a long first line")
	require.NoError(t, err)
	_, err = fixstr.Fprint(&second, "b")
	require.NoError(t, err)
	assert.Equal(t, "b\n", second.String())
}

func TestFprintConcurrent(t *testing.T) {
	t.Parallel()
	const workers = 16
	bufs := make([]bytes.Buffer, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				_, _ = fixstr.Fprint(&bufs[i], "worker ", i, " line ", j)
			}
		}()
	}
	wg.Wait()

	for i := range workers {
		lines := strings.Split(strings.TrimSuffix(bufs[i].String(), "\n"), "\n")
		require.Len(t, lines, 100)
		for j, line := range lines {
			var want fixstr.ShortTexter
			want.Print("worker ", i, " line ", j)
			assert.Equal(t, want.String(), line)
		}
	}
}

// Not parallel: installs the package logger.
func TestFprintLogsWriteFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	fixstr.SetLogger(zap.New(core))
	t.Cleanup(func() { fixstr.SetLogger(nil) })

	_, err := fixstr.Fprint(errWriter{}, "lost")
	require.ErrorIs(t, err, errWrite)

	entries := logs.FilterMessage("fixstr: print failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(5), entries[0].ContextMap()["bytes"])
}

func TestLoggerDefaultsToNop(t *testing.T) {
	t.Parallel()
	assert.NotNil(t, fixstr.Logger())
}

func TestPrintWith(t *testing.T) {
	t.Parallel()
	err := fixstr.PrintWith(errWrite, "returning: ", errWrite)
	assert.Equal(t, errWrite, err)
}
