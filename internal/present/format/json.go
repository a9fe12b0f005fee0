package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/readmekit/pkg/api"
)

func WriteJSONElements(w io.Writer, elements []api.Element, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(elements)
}

// WriteNDJSONElements writes elements as newline-delimited JSON objects.
func WriteNDJSONElements(w io.Writer, elements []api.Element) error {
	enc := json.NewEncoder(w)
	for _, e := range elements {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}
