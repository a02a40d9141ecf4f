package transfer

import (
	"encoding/json"
	"fmt"
	"io"
)

// Encode writes v as JSON. v is expected to be a transfer graph produced by a
// conversion, which never contains a reference cycle.
func Encode(w io.Writer, v any, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("transfer.Encode - failed to encode %T: %w", v, err)
	}

	return nil
}

// Marshal is Encode into a byte slice, without indentation or trailing newline.
func Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("transfer.Marshal - failed to marshal %T: %w", v, err)
	}
	return data, nil
}
