package output

import (
	"encoding/json"
	"io"
)

// writeJSONL writes one JSON document per item. Lines are not length
// limited, so it encodes straight to w instead of going through Fprint.
func writeJSONL[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}
