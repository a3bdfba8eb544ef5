package output

import (
	"fmt"
	"io"

	"github.com/bjaus/fixstr"
)

func writeList[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Lister); !ok {
		return fmt.Errorf("%w: format %q requires Lister, not implemented by %T", ErrMissingInterface, List, items[0])
	}
	var t fixstr.BufferTexter
	for _, item := range items {
		for _, s := range any(item).(Lister).List() {
			t.Str(s).Byte('\n')
		}
	}
	_, err := t.WriteTo(w)
	return err
}
