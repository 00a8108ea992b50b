package ingest

import (
	"errors"
	"fmt"

	"pkrms_db/internal/record"
	"pkrms_db/internal/validation"
)

// Status is the overall outcome of a batch.
type Status string

const (
	StatusSuccess         Status = "success"
	StatusPartialSuccess  Status = "partial_success"
	StatusValidationError Status = "validation_error"
)

const (
	msgSuccess  = "All data processed successfully"
	msgPartial  = "Some records failed validation"
	msgRejected = "FormData validation failed - rejecting all data"
)

// RecordFailure is the error report for one rejected record.
type RecordFailure struct {
	Record      record.Record                `json:"record"`
	Errors      validation.FieldErrors       `json:"errors"`
	Consistency *validation.ConsistencyError `json:"consistency,omitempty"`
}

func newRecordFailure(rec record.Record, err error) *RecordFailure {
	f := &RecordFailure{Record: rec, Errors: validation.FieldErrors{}}

	var fieldErr *FieldValidationError
	var consErr *ConsistencyValidationError
	switch {
	case errors.As(err, &fieldErr):
		f.Errors.Merge(fieldErr.Errors)
	case errors.As(err, &consErr):
		f.Consistency = consErr.Err
		field := consErr.Err.Field
		if field == "" {
			field = validation.NonFieldErrors
		}
		f.Errors.Add(field, consErr.Err.Message)
	default:
		f.Errors.Add(validation.NonFieldErrors, err.Error())
	}
	return f
}

// EntityResult summarizes one entity collection of a batch.
type EntityResult struct {
	Status   string                    `json:"status"`
	Created  int                       `json:"created"`
	Updated  int                       `json:"updated"`
	Error    string                    `json:"error,omitempty"`
	Failures map[string]*RecordFailure `json:"failures,omitempty"`

	// written holds the stored form of each successful record.
	written []record.Record
}

func newEntityResult() *EntityResult {
	return &EntityResult{Status: "success", Failures: map[string]*RecordFailure{}}
}

// Failed reports whether anything in the collection was rejected.
func (r *EntityResult) Failed() bool {
	return r.Error != "" || len(r.Failures) > 0
}

func (r *EntityResult) fail(err error) {
	r.Status = "failed"
	r.Error = err.Error()
}

func (r *EntityResult) addFailure(entity string, index int, f *RecordFailure) {
	r.Status = "failed"
	r.Failures[recordKey(entity, index)] = f
}

// errorsBody is the per-entity value under "errors" in the response.
func (r *EntityResult) errorsBody() map[string]any {
	out := make(map[string]any, len(r.Failures)+1)
	for k, f := range r.Failures {
		out[k] = f
	}
	if r.Error != "" {
		out["error"] = r.Error
	}
	return out
}

// Result is the outcome of one upload.
type Result struct {
	BatchID          string                   `json:"batch_id"`
	Status           Status                   `json:"status"`
	Message          string                   `json:"message"`
	Errors           map[string]any           `json:"errors,omitempty"`
	SuccessfulModels []string                 `json:"successful_models,omitempty"`
	Entities         map[string]*EntityResult `json:"results"`

	order []string
}

func newResult(batchID string) *Result {
	return &Result{BatchID: batchID, Entities: map[string]*EntityResult{}}
}

func (r *Result) add(entity string, er *EntityResult) {
	r.Entities[entity] = er
	r.order = append(r.order, entity)
}

func (r *Result) reject(gerr *GateValidationError) {
	r.Status = StatusValidationError
	r.Message = msgRejected
	r.Errors = map[string]any{
		recordKey(gerr.Entity, gerr.Index): &RecordFailure{Record: gerr.Record, Errors: gerr.Errors},
	}
}

func (r *Result) finish() {
	errs := map[string]any{}
	ok := make([]string, 0, len(r.order))
	for _, name := range r.order {
		er := r.Entities[name]
		if er.Failed() {
			errs[name] = er.errorsBody()
			continue
		}
		ok = append(ok, name)
	}
	if len(errs) == 0 {
		r.Status = StatusSuccess
		r.Message = msgSuccess
		r.SuccessfulModels = ok
		return
	}
	r.Status = StatusPartialSuccess
	r.Message = msgPartial
	r.Errors = errs
	r.SuccessfulModels = ok
}

// Counts returns the number of created, updated and failed records.
func (r *Result) Counts() (created, updated, failed int) {
	for _, er := range r.Entities {
		created += er.Created
		updated += er.Updated
		failed += len(er.Failures)
	}
	return created, updated, failed
}

func recordKey(entity string, index int) string {
	return fmt.Sprintf("%s_record_%d", entity, index)
}
