package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is returned when an upload body is valid JSON but not an object.
var ErrNotObject = errors.New("request body must be a JSON object")

var nonFiniteTokens = [][]byte{
	[]byte("-Infinity"),
	[]byte("Infinity"),
	[]byte("NaN"),
}

// SanitizeJSON rewrites the bare NaN, Infinity and -Infinity tokens that
// spreadsheet exporters emit into null. Text inside strings is left alone.
func SanitizeJSON(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))

	inString := false
	escaped := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			out.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			out.WriteByte(c)
			continue
		}
		if token := nonFiniteAt(data[i:]); token != nil {
			out.WriteString("null")
			i += len(token) - 1
			continue
		}
		out.WriteByte(c)
	}
	return out.Bytes()
}

func nonFiniteAt(data []byte) []byte {
	for _, token := range nonFiniteTokens {
		if bytes.HasPrefix(data, token) {
			return token
		}
	}
	return nil
}

// DecodeBatch parses an upload body into entity name -> raw collection.
// Numbers are kept as json.Number so decimal strings survive unchanged.
func DecodeBatch(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(SanitizeJSON(data)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	batch, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return batch, nil
}

// FromJSON decodes a single JSON object into a normalized Record.
func FromJSON(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	raw := map[string]any{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return Normalize(raw), nil
}
