// Package record holds the loosely typed row that flows through the upload pipeline.
package record

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// IDField is the identifier key shared by every persisted entity.
const IDField = "id"

// Record is one uploaded or stored row keyed by lower-case field name.
// After Normalize every scalar value is either a string or nil.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Without returns a copy of the record minus the given keys.
func (r Record) Without(keys ...string) Record {
	out := r.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Overlay returns a copy of r with every key of patch applied on top.
func (r Record) Overlay(patch Record) Record {
	out := r.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// Has reports whether the key is present at all, even with a nil value.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// String returns the trimmed string value of a field and whether it holds
// something other than null or blank.
func (r Record) String(field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Absent reports whether a field is missing, null or blank.
func (r Record) Absent(field string) bool {
	v, ok := r[field]
	if !ok || v == nil {
		return true
	}
	if s, isString := v.(string); isString {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// Keys returns the record keys in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Normalize folds keys to lower case and converts scalar values to their
// string form. NaN and infinite floats become nil. Nested objects and lists
// are kept as they are so field validation can reject them.
func Normalize(raw map[string]any) Record {
	out := make(Record, len(raw))
	for k, v := range raw {
		out[strings.ToLower(strings.TrimSpace(k))] = Scalar(v)
	}
	return out
}

// Scalar converts a decoded JSON value to the string form stored in a Record.
func Scalar(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return strconv.FormatFloat(f, 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return v
	}
}
