package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"pkrms_db/internal/record"
	"pkrms_db/internal/schema"
)

type memoryState struct {
	tables map[string]map[uint]record.Record
	nextID map[string]uint
}

func (s memoryState) clone() memoryState {
	out := memoryState{
		tables: make(map[string]map[uint]record.Record, len(s.tables)),
		nextID: make(map[string]uint, len(s.nextID)),
	}
	for name, rows := range s.tables {
		cp := make(map[uint]record.Record, len(rows))
		for id, r := range rows {
			cp[id] = r.Clone()
		}
		out.tables[name] = cp
	}
	for name, id := range s.nextID {
		out.nextID[name] = id
	}
	return out
}

// MemoryStore keeps records in process. Transactions are serialized and
// work on a copy of the state that replaces it on commit.
type MemoryStore struct {
	mu       sync.RWMutex
	state    memoryState
	entities map[string]*schema.Entity
	nowFn    func() time.Time
}

// NewMemory returns an empty store holding every persisted entity of reg.
func NewMemory(reg *schema.Registry) *MemoryStore {
	s := &MemoryStore{
		state:    memoryState{tables: map[string]map[uint]record.Record{}, nextID: map[string]uint{}},
		entities: map[string]*schema.Entity{},
		nowFn:    time.Now,
	}
	for _, name := range reg.Names() {
		e, _ := reg.Lookup(name)
		if !e.Persisted {
			continue
		}
		s.entities[name] = e
		s.state.tables[name] = map[uint]record.Record{}
	}
	return s
}

func (s *MemoryStore) Repository(entity string) (Repository, error) {
	e, ok := s.entities[entity]
	if !ok {
		return nil, fmt.Errorf("%s: %w", entity, ErrUnknownEntity)
	}
	return &lockedRepository{mu: &s.mu, inner: &memoryRepository{entity: e, state: &s.state, now: s.nowFn}}, nil
}

func (s *MemoryStore) LockLink(context.Context, string) error { return nil }

func (s *MemoryStore) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &memoryTx{store: s, state: s.state.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

type memoryTx struct {
	store *MemoryStore
	state memoryState
}

func (t *memoryTx) Repository(entity string) (Repository, error) {
	e, ok := t.store.entities[entity]
	if !ok {
		return nil, fmt.Errorf("%s: %w", entity, ErrUnknownEntity)
	}
	return &memoryRepository{entity: e, state: &t.state, now: t.store.nowFn}, nil
}

// LockLink is a no-op: the store lock already serializes transactions.
func (t *memoryTx) LockLink(context.Context, string) error { return nil }

type memoryRepository struct {
	entity *schema.Entity
	state  *memoryState
	now    func() time.Time
}

func (r *memoryRepository) rows() map[uint]record.Record {
	return r.state.tables[r.entity.Name]
}

func (r *memoryRepository) checkUnique(rec record.Record, self uint) error {
	for _, field := range r.entity.Unique() {
		v, ok := rec.String(field)
		if !ok {
			continue
		}
		for id, other := range r.rows() {
			if id == self {
				continue
			}
			if ov, _ := other.String(field); ov == v {
				return fmt.Errorf("%s.%s: %w", r.entity.Name, field, ErrDuplicate)
			}
		}
	}
	return nil
}

func (r *memoryRepository) columns(rec record.Record) record.Record {
	out := record.Record{}
	for k, v := range rec.Without(managedColumns...) {
		if _, ok := r.entity.Field(k); ok {
			out[k] = v
		}
	}
	return out
}

func (r *memoryRepository) Create(_ context.Context, rec record.Record) (uint, error) {
	row := r.columns(rec)
	if err := r.checkUnique(row, 0); err != nil {
		return 0, err
	}
	r.state.nextID[r.entity.Name]++
	id := r.state.nextID[r.entity.Name]

	now := r.now().UTC().Format(time.RFC3339Nano)
	row[record.IDField] = strconv.FormatUint(uint64(id), 10)
	row["created_at"] = now
	row["updated_at"] = now
	r.rows()[id] = row
	return id, nil
}

func (r *memoryRepository) UpdateByID(_ context.Context, id uint, patch record.Record) error {
	current, ok := r.rows()[id]
	if !ok {
		return ErrNotFound
	}
	merged := current.Overlay(r.columns(patch))
	if err := r.checkUnique(merged, id); err != nil {
		return err
	}
	merged["updated_at"] = r.now().UTC().Format(time.RFC3339Nano)
	r.rows()[id] = merged
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id uint) (record.Record, error) {
	row, ok := r.rows()[id]
	if !ok {
		return nil, ErrNotFound
	}
	return row.Clone(), nil
}

func (r *memoryRepository) FindAllByForeignKey(_ context.Context, field, value string) ([]record.Record, error) {
	if _, ok := r.entity.Field(field); !ok {
		return nil, fmt.Errorf("%s.%s: %w", r.entity.Name, field, ErrUnknownField)
	}
	ids := make([]uint, 0)
	for id, row := range r.rows() {
		if v, _ := row.String(field); v == value {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]record.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.rows()[id].Clone())
	}
	return out, nil
}

// lockedRepository guards reads and writes made outside a transaction.
type lockedRepository struct {
	mu    *sync.RWMutex
	inner Repository
}

func (l *lockedRepository) Create(ctx context.Context, rec record.Record) (uint, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Create(ctx, rec)
}

func (l *lockedRepository) UpdateByID(ctx context.Context, id uint, patch record.Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.UpdateByID(ctx, id, patch)
}

func (l *lockedRepository) FindByID(ctx context.Context, id uint) (record.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.inner.FindByID(ctx, id)
}

func (l *lockedRepository) FindAllByForeignKey(ctx context.Context, field, value string) ([]record.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.inner.FindAllByForeignKey(ctx, field, value)
}
