// Package ingest runs bulk uploads: it gates a batch on its header record,
// then validates and upserts every other record in its own transaction and
// aggregates the failures.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pkrms_db/internal/admincode"
	"pkrms_db/internal/record"
	"pkrms_db/internal/schema"
	"pkrms_db/internal/store"
	"pkrms_db/internal/validation"
)

// Publisher receives a summary of every finished batch.
type Publisher interface {
	Publish(Summary)
}

// Recorder counts batches and records.
type Recorder interface {
	ObserveBatch(status string, elapsed time.Duration)
	ObserveRecord(entity, outcome string)
}

// Record outcomes reported to the Recorder.
const (
	OutcomeCreated = "created"
	OutcomeUpdated = "updated"
	OutcomeFailed  = "failed"
)

// Summary is the broadcast form of a Result.
type Summary struct {
	BatchID    string         `json:"batch_id"`
	Status     Status         `json:"status"`
	Created    int            `json:"created"`
	Updated    int            `json:"updated"`
	Failed     int            `json:"failed"`
	Entities   map[string]int `json:"entities"`
	AdminCodes []string       `json:"admin_codes"`
	FinishedAt time.Time      `json:"finished_at"`
	Submitter  string         `json:"submitter,omitempty"`
}

// Option configures a Service.
type Option func(*Service)

func WithPublisher(p Publisher) Option { return func(s *Service) { s.publisher = p } }

func WithRecorder(r Recorder) Option { return func(s *Service) { s.recorder = r } }

func WithLogger(l logrus.FieldLogger) Option { return func(s *Service) { s.log = l } }

// Service orchestrates uploads. It is safe for concurrent use.
type Service struct {
	registry  *schema.Registry
	store     store.Store
	validator *validation.Validator
	publisher Publisher
	recorder  Recorder
	log       logrus.FieldLogger
	now       func() time.Time
}

// NewService builds a Service over the given registry and store.
func NewService(reg *schema.Registry, st store.Store, opts ...Option) *Service {
	s := &Service{
		registry:  reg,
		store:     st,
		validator: validation.New(),
		log:       logrus.StandardLogger(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the entity definitions the service accepts.
func (s *Service) Registry() *schema.Registry { return s.registry }

// Upload validates and stores a batch keyed by entity name. It never
// returns nil; every problem is reported inside the Result.
func (s *Service) Upload(ctx context.Context, batch map[string]any) *Result {
	started := s.now()
	res := newResult(uuid.NewString())
	log := s.log.WithField("batch_id", res.BatchID)

	names := make([]string, 0, len(batch))
	for name := range batch {
		names = append(names, name)
	}
	log.WithField("entities", names).Info("Upload received")

	header, hasHeader := s.registry.Header()
	var headerRec record.Record
	if hasHeader {
		if raw, ok := batch[header.Name]; ok {
			rec, gerr := s.gate(header, raw)
			if gerr != nil {
				log.WithField("record", gerr.Index).WithError(gerr).Warn("Header validation failed, rejecting batch")
				res.reject(gerr)
				s.complete(res, nil, started, log)
				return res
			}
			headerRec = rec
		}
	}

	for _, name := range s.registry.Order(names) {
		if hasHeader && name == header.Name {
			continue
		}
		res.add(name, s.processEntity(ctx, name, batch[name], log.WithField("entity", name)))
	}
	res.finish()
	s.complete(res, headerRec, started, log)
	return res
}

// gate validates every header record and stops at the first failure.
func (s *Service) gate(header *schema.Entity, raw any) (record.Record, *GateValidationError) {
	items, err := collection(raw)
	if err != nil {
		errs := validation.FieldErrors{}
		errs.Add(validation.NonFieldErrors, err.Error())
		return nil, &GateValidationError{Entity: header.Name, Errors: errs}
	}

	var first record.Record
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			errs := validation.FieldErrors{}
			errs.Add(validation.NonFieldErrors, notAnObject(item))
			return nil, &GateValidationError{Entity: header.Name, Index: i, Errors: errs}
		}
		rec := record.Normalize(m)
		if errs := s.validator.Fields(header, rec); !errs.Empty() {
			return nil, &GateValidationError{Entity: header.Name, Index: i, Record: rec, Errors: errs}
		}
		if first == nil {
			first = rec
		}
	}
	return first, nil
}

func (s *Service) processEntity(ctx context.Context, name string, raw any, log logrus.FieldLogger) *EntityResult {
	er := newEntityResult()

	e, ok := s.registry.Lookup(name)
	if !ok || !e.Persisted {
		err := &UnknownEntityError{Entity: name}
		log.WithError(err).Warn("Skipping unknown entity")
		er.fail(err)
		return er
	}

	items, err := collection(raw)
	if err != nil {
		log.WithError(err).Warn("Malformed collection")
		er.fail(unexpected("read "+name, err))
		return er
	}

	for i, item := range items {
		rec, outcome, err := s.processRecord(ctx, e, item)
		if err != nil {
			var ue *UnexpectedError
			entry := log.WithField("record", i).WithError(err)
			if errors.As(err, &ue) {
				entry.Error("Record failed")
			} else {
				entry.Debug("Record rejected")
			}
			er.addFailure(name, i, newRecordFailure(rec, err))
			s.observeRecord(name, OutcomeFailed)
			continue
		}
		switch outcome {
		case OutcomeCreated:
			er.Created++
		case OutcomeUpdated:
			er.Updated++
		}
		er.written = append(er.written, rec)
		s.observeRecord(name, outcome)
	}

	log.WithFields(logrus.Fields{
		"created": er.Created,
		"updated": er.Updated,
		"failed":  len(er.Failures),
	}).Info("Entity processed")
	return er
}

// processRecord upserts one record. It returns the normalized record along
// with the outcome so failures can echo it back.
func (s *Service) processRecord(ctx context.Context, e *schema.Entity, item any) (record.Record, string, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return nil, "", fieldError(validation.NonFieldErrors, notAnObject(item))
	}
	normalized := record.Normalize(m)
	suppliedCode := !normalized.Absent(schema.FieldAdminCode)
	rec := admincode.Derive(normalized)

	var id uint
	if raw, ok := rec.String(record.IDField); ok {
		parsed, err := validation.ParseID(raw)
		switch {
		case errors.Is(err, validation.ErrIDRange):
			// No stored row can carry this id, so the record is new.
			rec = rec.Without(record.IDField)
		case err != nil:
			return rec, "", fieldError(record.IDField, validation.MsgInteger)
		default:
			id = parsed
		}
	} else if !rec.Absent(record.IDField) {
		return rec, "", fieldError(record.IDField, validation.MsgInteger)
	}

	outcome := OutcomeCreated
	err := s.store.WithinTx(ctx, func(tx store.Tx) error {
		repo, err := tx.Repository(e.Name)
		if err != nil {
			return unexpected("open repository", err)
		}

		candidate := rec
		if id != 0 {
			current, err := repo.FindByID(ctx, id)
			switch {
			case err == nil:
				outcome = OutcomeUpdated
				if !suppliedCode && !current.Absent(schema.FieldAdminCode) {
					rec = rec.Without(schema.FieldAdminCode)
				}
				candidate = current.Overlay(rec)
			case errors.Is(err, store.ErrNotFound):
			default:
				return unexpected("load record", err)
			}
		}

		if errs := s.validator.Fields(e, candidate); !errs.Empty() {
			return &FieldValidationError{Errors: errs}
		}

		self := uint(0)
		if outcome == OutcomeUpdated {
			self = id
		}
		if key, ok := lockKey(e, candidate); ok {
			if err := tx.LockLink(ctx, key); err != nil {
				return unexpected("lock link", err)
			}
		}
		if err := s.checkUnique(ctx, e, repo, candidate, self); err != nil {
			return err
		}
		if err := s.checkLink(ctx, tx, e, repo, candidate, self); err != nil {
			return err
		}

		if outcome == OutcomeUpdated {
			if err := repo.UpdateByID(ctx, id, rec.Without(record.IDField)); err != nil {
				return s.writeError(e, err)
			}
			return nil
		}
		if _, err := repo.Create(ctx, candidate); err != nil {
			return s.writeError(e, err)
		}
		return nil
	})
	return rec, outcome, err
}

func (s *Service) checkUnique(ctx context.Context, e *schema.Entity, repo store.Repository, rec record.Record, self uint) error {
	for _, field := range e.Unique() {
		value, ok := rec.String(field)
		if !ok {
			continue
		}
		rows, err := repo.FindAllByForeignKey(ctx, field, value)
		if err != nil {
			return unexpected("check unique "+field, err)
		}
		for _, row := range rows {
			if rowID(row) != self {
				return fieldError(field, validation.UniqueViolation(e.Name, field))
			}
		}
	}
	return nil
}

// checkLink resolves the parent link and applies the entity's linear rule.
func (s *Service) checkLink(ctx context.Context, tx store.Tx, e *schema.Entity, repo store.Repository, rec record.Record, self uint) error {
	if e.ForeignKey == "" {
		return nil
	}
	linkNo, _ := rec.String(e.ForeignKey)

	links, err := tx.Repository(schema.Link)
	if err != nil {
		return unexpected("open link repository", err)
	}
	found, err := links.FindAllByForeignKey(ctx, schema.FieldLinkNo, linkNo)
	if err != nil {
		return unexpected("load link", err)
	}
	if len(found) == 0 {
		return fieldError(e.ForeignKey, validation.MissingReference(e.ForeignKey, linkNo))
	}
	if e.Linear == schema.LinearNone {
		return nil
	}

	siblings, err := repo.FindAllByForeignKey(ctx, e.ForeignKey, linkNo)
	if err != nil {
		return unexpected("load siblings", err)
	}
	length, _ := found[0].String(schema.FieldLinkLengthActual)
	if cerr := validation.CheckLinear(e, rec, self, siblings, length); cerr != nil {
		return &ConsistencyValidationError{Err: cerr}
	}
	return nil
}

// lockKey names the link whose writers must be serialized with this record.
func lockKey(e *schema.Entity, rec record.Record) (string, bool) {
	switch {
	case e.ForeignKey != "":
		return rec.String(e.ForeignKey)
	case e.Name == schema.Link:
		return rec.String(schema.FieldLinkNo)
	}
	return "", false
}

func (s *Service) writeError(e *schema.Entity, err error) error {
	if errors.Is(err, store.ErrDuplicate) {
		if fields := e.Unique(); len(fields) > 0 {
			return fieldError(fields[0], validation.UniqueViolation(e.Name, fields[0]))
		}
	}
	return unexpected("write "+e.Name, err)
}

func (s *Service) complete(res *Result, header record.Record, started time.Time, log logrus.FieldLogger) {
	created, updated, failed := res.Counts()
	log.WithFields(logrus.Fields{
		"status":  res.Status,
		"created": created,
		"updated": updated,
		"failed":  failed,
		"elapsed": s.now().Sub(started).String(),
	}).Info("Upload finished")

	if s.recorder != nil {
		s.recorder.ObserveBatch(string(res.Status), s.now().Sub(started))
	}
	if s.publisher != nil {
		s.publisher.Publish(summarize(res, header, s.now()))
	}
}

func (s *Service) observeRecord(entity, outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveRecord(entity, outcome)
	}
}

func summarize(res *Result, header record.Record, at time.Time) Summary {
	created, updated, failed := res.Counts()
	sum := Summary{
		BatchID:    res.BatchID,
		Status:     res.Status,
		Created:    created,
		Updated:    updated,
		Failed:     failed,
		Entities:   map[string]int{},
		FinishedAt: at.UTC(),
	}
	if header != nil {
		sum.Submitter, _ = header.String("lg_name")
	}
	codes := map[string]struct{}{}
	for name, er := range res.Entities {
		sum.Entities[name] = len(er.written)
		for _, rec := range er.written {
			if code, ok := rec.String(schema.FieldAdminCode); ok {
				codes[code] = struct{}{}
			}
		}
	}
	for code := range codes {
		sum.AdminCodes = append(sum.AdminCodes, code)
	}
	sort.Strings(sum.AdminCodes)
	return sum
}

// collection accepts a list of records or a single record object.
func collection(raw any) ([]any, error) {
	switch v := raw.(type) {
	case []any:
		return v, nil
	case map[string]any:
		return []any{v}, nil
	default:
		return nil, fmt.Errorf("expected a list of records, got %s", typeName(raw))
	}
}

func notAnObject(v any) string {
	return fmt.Sprintf("Invalid data. Expected an object, but got %s.", typeName(v))
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case []any:
		return "array"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	default:
		return "number"
	}
}

func rowID(rec record.Record) uint {
	s, ok := rec.String(record.IDField)
	if !ok {
		return 0
	}
	id, _ := validation.ParseID(s)
	return id
}
