package output

import (
	"fmt"
	"io"

	"github.com/bjaus/fixstr"
)

func writePlain[T any](w io.Writer, items []T) error {
	for _, item := range items {
		if _, err := fixstr.Fprint(w, item); err != nil {
			return fmt.Errorf("plain: %w", err)
		}
	}
	return nil
}
