package format

import (
	"encoding/json"
	"io"

	"zed-recent/internal/apperr"
)

// WriteJSON writes v as a single strict JSON document followed by a newline.
//
// The document is fully encoded before anything is written, so an encoding
// failure never leaves a partial document on w.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return apperr.E(apperr.Serialization, "encode response", err)
	}

	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return apperr.E(apperr.Serialization, "write response", err)
	}
	return nil
}
