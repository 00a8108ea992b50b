// Package schema describes the uploadable entities: their fields, which of
// them are required, how they hang off a Link and which linear-referencing
// rule applies. Validators read these definitions; they never hard-code an
// entity.
package schema

import (
	"fmt"
	"sort"
)

// Kind is the value type a field must parse as.
type Kind int

const (
	KindText Kind = iota
	KindDecimal
	KindInteger
	KindEmail
	KindPhone
	KindWKT
)

func (k Kind) String() string {
	switch k {
	case KindDecimal:
		return "decimal"
	case KindInteger:
		return "integer"
	case KindEmail:
		return "email"
	case KindPhone:
		return "phone"
	case KindWKT:
		return "wkt"
	default:
		return "text"
	}
}

// Linear selects the cross-record rule applied to an entity.
type Linear int

const (
	// LinearNone means no chainage checks.
	LinearNone Linear = iota
	// LinearWithinLink checks every chainage field lies inside the link
	// length plus tolerance.
	LinearWithinLink
	// LinearSegment applies the from/to overlap and total-length checks.
	LinearSegment
)

func (l Linear) String() string {
	switch l {
	case LinearWithinLink:
		return "within_link"
	case LinearSegment:
		return "segment"
	default:
		return "none"
	}
}

// Condition makes a field required only when another field holds a value.
type Condition struct {
	Field string
	Value string
}

// Field describes one column of an entity.
type Field struct {
	Name         string
	Kind         Kind
	Required     bool
	Unique       bool
	OneOf        []string
	RequiredWhen *Condition
}

// Entity is the static description of one uploadable record type.
type Entity struct {
	Name   string
	Fields []Field
	// ForeignKey names the field holding the parent link number.
	ForeignKey string
	Linear     Linear
	// Chainages lists the fields the linear rule reads. For LinearSegment it
	// is exactly {from, to}.
	Chainages []string
	// Gate marks the header entity validated before anything else.
	Gate bool
	// Persisted is false for entities that are validated but never stored.
	Persisted bool

	index map[string]int
}

// Field returns the definition of a named field.
func (e *Entity) Field(name string) (Field, bool) {
	if e.index == nil {
		e.buildIndex()
	}
	i, ok := e.index[name]
	if !ok {
		return Field{}, false
	}
	return e.Fields[i], true
}

// Required returns the names of unconditionally required fields.
func (e *Entity) Required() []string {
	var out []string
	for _, f := range e.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

// Unique returns the fields whose values must not repeat across records.
func (e *Entity) Unique() []string {
	var out []string
	for _, f := range e.Fields {
		if f.Unique {
			out = append(out, f.Name)
		}
	}
	return out
}

func (e *Entity) buildIndex() {
	e.index = make(map[string]int, len(e.Fields))
	for i, f := range e.Fields {
		e.index[f.Name] = i
	}
}

func (e *Entity) check() error {
	if e.Name == "" {
		return fmt.Errorf("entity without a name")
	}
	e.buildIndex()
	if len(e.index) != len(e.Fields) {
		return fmt.Errorf("entity %s: duplicate field names", e.Name)
	}
	if e.ForeignKey != "" {
		if _, ok := e.index[e.ForeignKey]; !ok {
			return fmt.Errorf("entity %s: foreign key %q is not a field", e.Name, e.ForeignKey)
		}
	}
	if e.Linear != LinearNone && e.ForeignKey == "" {
		return fmt.Errorf("entity %s: linear rule needs a foreign key", e.Name)
	}
	if e.Linear == LinearSegment && len(e.Chainages) != 2 {
		return fmt.Errorf("entity %s: segment rule needs exactly two chainage fields", e.Name)
	}
	for _, c := range e.Chainages {
		f, ok := e.index[c]
		if !ok || e.Fields[f].Kind != KindDecimal {
			return fmt.Errorf("entity %s: chainage field %q must be a decimal field", e.Name, c)
		}
	}
	return nil
}

// Registry maps entity names to their definitions. It is built once at start
// up and read concurrently afterwards.
type Registry struct {
	entities map[string]*Entity
	order    []string
}

// NewRegistry builds a registry. Entities are processed in the order given.
func NewRegistry(entities ...*Entity) (*Registry, error) {
	r := &Registry{entities: make(map[string]*Entity, len(entities))}
	for _, e := range entities {
		if err := r.register(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) register(e *Entity) error {
	if err := e.check(); err != nil {
		return err
	}
	if _, exists := r.entities[e.Name]; exists {
		return fmt.Errorf("entity %s registered twice", e.Name)
	}
	r.entities[e.Name] = e
	r.order = append(r.order, e.Name)
	return nil
}

// Lookup returns the entity registered under name.
func (r *Registry) Lookup(name string) (*Entity, bool) {
	e, ok := r.entities[name]
	return e, ok
}

// Names returns entity names in processing order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Header returns the gating entity, if one is registered.
func (r *Registry) Header() (*Entity, bool) {
	for _, name := range r.order {
		if e := r.entities[name]; e.Gate {
			return e, true
		}
	}
	return nil, false
}

// Order sorts the given entity names by processing order. Names the registry
// does not know go last, alphabetically.
func (r *Registry) Order(names []string) []string {
	rank := make(map[string]int, len(r.order))
	for i, n := range r.order {
		rank[n] = i
	}
	out := append([]string(nil), names...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iKnown := rank[out[i]]
		rj, jKnown := rank[out[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return out[i] < out[j]
		}
	})
	return out
}
