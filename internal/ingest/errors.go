package ingest

import (
	"fmt"

	"pkrms_db/internal/record"
	"pkrms_db/internal/validation"
)

// GateValidationError rejects a whole batch because a header record failed.
type GateValidationError struct {
	Entity string
	Index  int
	Record record.Record
	Errors validation.FieldErrors
}

func (e *GateValidationError) Error() string {
	return fmt.Sprintf("%s record %d: %s", e.Entity, e.Index, e.Errors.Error())
}

// FieldValidationError is a record that failed field-level checks.
type FieldValidationError struct {
	Errors validation.FieldErrors
}

func (e *FieldValidationError) Error() string { return e.Errors.Error() }

func (e *FieldValidationError) Unwrap() error { return e.Errors }

// ConsistencyValidationError is a record that disagrees with its link or
// its siblings.
type ConsistencyValidationError struct {
	Err *validation.ConsistencyError
}

func (e *ConsistencyValidationError) Error() string { return e.Err.Error() }

func (e *ConsistencyValidationError) Unwrap() error { return e.Err }

// UnknownEntityError is a batch key that names no registered entity.
type UnknownEntityError struct {
	Entity string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("no handler for entity %s", e.Entity)
}

// UnexpectedError wraps storage failures and malformed input shapes.
type UnexpectedError struct {
	Op  string
	Err error
}

func (e *UnexpectedError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *UnexpectedError) Unwrap() error { return e.Err }

func unexpected(op string, err error) error {
	return &UnexpectedError{Op: op, Err: err}
}

func fieldError(field, msg string) error {
	errs := validation.FieldErrors{}
	errs.Add(field, msg)
	return &FieldValidationError{Errors: errs}
}
