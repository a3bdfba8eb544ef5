package output

import (
	"encoding/json"
	"io"
)

func writeJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	if len(items) == 1 {
		return enc.Encode(items[0])
	}
	return enc.Encode(items)
}
