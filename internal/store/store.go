// Package store persists uploaded records. The ingestion pipeline only sees
// the interfaces below; gorm and in-memory implementations back them.
package store

import (
	"context"
	"errors"

	"pkrms_db/internal/record"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate value violates unique constraint")
	// ErrUnknownEntity is returned for entities that have no table.
	ErrUnknownEntity = errors.New("entity has no storage")
	// ErrUnknownField is returned when filtering on a column that does not exist.
	ErrUnknownField = errors.New("unknown field")
)

// Repository reads and writes the records of one entity.
type Repository interface {
	// Create inserts rec and returns the assigned id. Any id in rec is ignored.
	Create(ctx context.Context, rec record.Record) (uint, error)
	// UpdateByID writes only the fields present in patch.
	UpdateByID(ctx context.Context, id uint, patch record.Record) error
	FindByID(ctx context.Context, id uint) (record.Record, error)
	// FindAllByForeignKey returns every record whose field equals value,
	// ordered by id.
	FindAllByForeignKey(ctx context.Context, field, value string) ([]record.Record, error)
}

// Tx is the view of the store inside a transaction.
type Tx interface {
	Repository(entity string) (Repository, error)
	// LockLink serializes writers touching the same link until the
	// transaction ends. Implementations without locking return nil.
	LockLink(ctx context.Context, linkNo string) error
}

// Store runs transactions and also serves reads outside of one.
type Store interface {
	Tx
	// WithinTx runs fn in a transaction that commits when fn returns nil and
	// rolls back otherwise.
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}
