package output

import (
	"fmt"
	"io"

	"github.com/bjaus/fixstr"
)

func writeTSV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Rower); !ok {
		return fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, TSV, items[0])
	}
	var t fixstr.BufferTexter
	if h, ok := any(items[0]).(Headed); ok && len(h.Header()) > 0 {
		writeRow(&t, h.Header())
	}
	for _, item := range items {
		writeRow(&t, any(item).(Rower).Row())
	}
	_, err := t.WriteTo(w)
	return err
}

func writeRow(t *fixstr.BufferTexter, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			t.Byte('\t')
		}
		t.Str(cell)
	}
	t.Byte('\n')
}
