package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormschema "gorm.io/gorm/schema"

	"pkrms_db/internal/models"
	"pkrms_db/internal/record"
	"pkrms_db/internal/schema"
)

// Columns managed by the database, never taken from uploads.
var managedColumns = []string{record.IDField, "created_at", "updated_at"}

type row[T any] interface {
	*T
	PrimaryKey() uint
}

type binding func(db *gorm.DB) Repository

func bind[T any, P row[T]]() binding {
	return func(db *gorm.DB) Repository { return &gormRepository[T, P]{db: db} }
}

var bindings = map[string]binding{
	schema.Link:                    bind[models.Link](),
	schema.Alignment:               bind[models.Alignment](),
	schema.DRP:                     bind[models.DRP](),
	schema.RoadCondition:           bind[models.RoadCondition](),
	schema.BridgeInventory:         bind[models.BridgeInventory](),
	schema.RoadHazard:              bind[models.RoadHazard](),
	schema.TrafficVolume:           bind[models.TrafficVolume](),
	schema.TrafficWeightingFactors: bind[models.TrafficWeightingFactors](),
	schema.UnitCostsPERUnpaved:     bind[models.UnitCostsPERUnpaved](),
	schema.UnitCostsREH:            bind[models.UnitCostsREH](),
	schema.UnitCostsRIGID:          bind[models.UnitCostsRIGID](),
	schema.UnitCostsWidening:       bind[models.UnitCostsWidening](),
	schema.WidthStandards:          bind[models.WidthStandards](),
}

// GormOption configures a GormStore.
type GormOption func(*GormStore)

// WithLinkLocks enables transaction-scoped advisory locks per link. They are
// only taken on PostgreSQL.
func WithLinkLocks(enabled bool) GormOption {
	return func(s *GormStore) { s.linkLocks = enabled }
}

// GormStore is the relational Store.
type GormStore struct {
	db        *gorm.DB
	linkLocks bool
}

// NewGorm wraps an open gorm handle. Tables must already be migrated.
func NewGorm(db *gorm.DB, opts ...GormOption) *GormStore {
	s := &GormStore{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GormStore) Repository(entity string) (Repository, error) {
	return repositoryFor(s.db, entity)
}

// LockLink outside a transaction has nothing to hold the lock, so it is a no-op.
func (s *GormStore) LockLink(context.Context, string) error { return nil }

func (s *GormStore) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}
	if err := fn(&gormTx{db: tx, linkLocks: s.linkLocks}); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type gormTx struct {
	db        *gorm.DB
	linkLocks bool
}

func (t *gormTx) Repository(entity string) (Repository, error) {
	return repositoryFor(t.db, entity)
}

func (t *gormTx) LockLink(ctx context.Context, linkNo string) error {
	if !t.linkLocks || t.db.Dialector.Name() != "postgres" {
		return nil
	}
	if err := t.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", linkNo).Error; err != nil {
		return fmt.Errorf("lock link %s: %w", linkNo, err)
	}
	return nil
}

func repositoryFor(db *gorm.DB, entity string) (Repository, error) {
	b, ok := bindings[entity]
	if !ok {
		return nil, fmt.Errorf("%s: %w", entity, ErrUnknownEntity)
	}
	return b(db), nil
}

var schemaCache sync.Map

type gormRepository[T any, P row[T]] struct {
	db *gorm.DB
}

func (r *gormRepository[T, P]) columns() (*gormschema.Schema, error) {
	return gormschema.Parse(new(T), &schemaCache, r.db.NamingStrategy)
}

func (r *gormRepository[T, P]) Create(ctx context.Context, rec record.Record) (uint, error) {
	var m T
	if err := decodeRow(rec.Without(managedColumns...), &m); err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return 0, translate(err)
	}
	return P(&m).PrimaryKey(), nil
}

func (r *gormRepository[T, P]) UpdateByID(ctx context.Context, id uint, patch record.Record) error {
	s, err := r.columns()
	if err != nil {
		return err
	}
	values := map[string]any{}
	for k, v := range patch.Without(managedColumns...) {
		if _, ok := s.FieldsByDBName[k]; !ok {
			continue
		}
		values[k] = v
	}
	if len(values) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}

	res := r.db.WithContext(ctx).Model(P(new(T))).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository[T, P]) FindByID(ctx context.Context, id uint) (record.Record, error) {
	var m T
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return encodeRow(&m)
}

func (r *gormRepository[T, P]) FindAllByForeignKey(ctx context.Context, field, value string) ([]record.Record, error) {
	s, err := r.columns()
	if err != nil {
		return nil, err
	}
	if _, ok := s.FieldsByDBName[field]; !ok {
		return nil, fmt.Errorf("%s.%s: %w", s.Table, field, ErrUnknownField)
	}

	var rows []T
	err = r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: field}, Value: value}).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]record.Record, 0, len(rows))
	for i := range rows {
		rec, err := encodeRow(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeRow(rec record.Record, dst any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode record into %T: %w", dst, err)
	}
	return nil
}

func encodeRow(src any) (record.Record, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", src, err)
	}
	return record.FromJSON(data)
}

func translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%s: %w", pqErr.Constraint, ErrDuplicate)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%v: %w", err, ErrDuplicate)
	}
	return err
}
