package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML[T any](w io.Writer, items []T) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if len(items) == 1 {
		if err := enc.Encode(items[0]); err != nil {
			return err
		}
	} else {
		if err := enc.Encode(items); err != nil {
			return err
		}
	}
	return enc.Close()
}
