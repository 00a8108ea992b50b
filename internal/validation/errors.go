package validation

import (
	"sort"
	"strings"
)

// NonFieldErrors is the key for errors that belong to the record as a whole.
const NonFieldErrors = "non_field_errors"

// Messages returned for field failures.
const (
	MsgRequired      = "This field is required."
	MsgNumber        = "A valid number is required."
	MsgInteger       = "A valid integer is required."
	MsgEmail         = "Enter a valid email address."
	MsgPhone         = "Phone number must be 9 to 14 digits."
	MsgLineString    = "Enter a valid WKT LINESTRING."
	MsgNotScalar     = "Not a valid string."
	msgChoiceFormat  = "%q is not a valid choice."
	msgMissingFormat = "Invalid %s %q - object does not exist."
	msgUniqueFormat  = "%s with this %s already exists."
)

// FieldErrors maps a field name to its error messages.
type FieldErrors map[string][]string

// Add appends a message for field.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Merge copies every message of other into e.
func (e FieldErrors) Merge(other FieldErrors) {
	for f, msgs := range other {
		e[f] = append(e[f], msgs...)
	}
}

func (e FieldErrors) Empty() bool { return len(e) == 0 }

// Err returns e as an error, or nil when it holds no messages.
func (e FieldErrors) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}
	return strings.Join(parts, "; ")
}
