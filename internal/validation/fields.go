// Package validation checks uploaded records against their entity
// definition and against sibling records on the same Link.
package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"pkrms_db/internal/record"
	"pkrms_db/internal/schema"
)

var phonePattern = regexp.MustCompile(`^(\+62)?[0-9]{9,14}$`)

// Validator runs the field-level checks. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator with the custom tags registered.
func New() *Validator {
	v := validator.New()
	if err := v.RegisterValidation("idphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

// Fields checks every declared field of rec. Fields the entity does not
// declare are ignored. The returned map is empty when the record is valid.
func (v *Validator) Fields(e *schema.Entity, rec record.Record) FieldErrors {
	errs := FieldErrors{}
	for _, f := range e.Fields {
		if rec.Absent(f.Name) {
			if f.Required || requiredBy(f.RequiredWhen, rec) {
				errs.Add(f.Name, MsgRequired)
			}
			continue
		}
		raw, ok := rec[f.Name].(string)
		if !ok {
			errs.Add(f.Name, MsgNotScalar)
			continue
		}
		if msg := v.check(f, strings.TrimSpace(raw)); msg != "" {
			errs.Add(f.Name, msg)
		}
	}
	return errs
}

func requiredBy(c *schema.Condition, rec record.Record) bool {
	if c == nil {
		return false
	}
	s, ok := rec.String(c.Field)
	return ok && s == c.Value
}

func (v *Validator) check(f schema.Field, s string) string {
	switch f.Kind {
	case schema.KindDecimal:
		if _, err := ParseDecimal(s); err != nil {
			return MsgNumber
		}
	case schema.KindInteger:
		if _, err := ParseID(s); err != nil && !errors.Is(err, ErrIDRange) {
			return MsgInteger
		}
	case schema.KindEmail:
		if err := v.validate.Var(s, "email"); err != nil {
			return MsgEmail
		}
	case schema.KindPhone:
		if err := v.validate.Var(s, "idphone"); err != nil {
			return MsgPhone
		}
	case schema.KindWKT:
		if !isLineString(s) {
			return MsgLineString
		}
	}
	if len(f.OneOf) > 0 {
		if err := v.validate.Var(s, "oneof="+strings.Join(f.OneOf, " ")); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				return fmt.Sprintf(msgChoiceFormat, s)
			}
			return err.Error()
		}
	}
	return ""
}

func isLineString(s string) bool {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return false
	}
	ls, ok := g.(*geom.LineString)
	return ok && ls.NumCoords() >= 2
}

const (
	maxDecimalLen = 64
	maxExponent   = 30
)

var (
	// ErrDecimalRange reports a number too long or too large to be a
	// measurement.
	ErrDecimalRange = errors.New("number out of range")
	// ErrIDRange reports a well-formed id too large to address a stored row.
	ErrIDRange = errors.New("id out of range")
)

// ParseDecimal parses a numeric cell. Inputs longer than 64 characters or
// with an exponent beyond ±30 are rejected before any arithmetic runs on
// them.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxDecimalLen {
		return decimal.Zero, fmt.Errorf("parse number: %w", ErrDecimalRange)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse number %q: %w", s, err)
	}
	if e := d.Exponent(); e > maxExponent || e < -maxExponent {
		return decimal.Zero, fmt.Errorf("parse number %q: %w", s, ErrDecimalRange)
	}
	return d, nil
}

// ParseID parses a record identifier. Integral decimals such as "12.0" are
// accepted because spreadsheet exports write whole numbers that way. An
// integer above math.MaxInt64 fails with ErrIDRange.
func ParseID(s string) (uint, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxDecimalLen {
		return 0, fmt.Errorf("parse id: %w", ErrDecimalRange)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", s, err)
	}
	if d.IsNegative() || d.Exponent() < -maxExponent {
		return 0, fmt.Errorf("parse id %q: not a non-negative integer", s)
	}
	if d.Exponent() > maxExponent {
		return 0, fmt.Errorf("parse id %q: %w", s, ErrIDRange)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("parse id %q: not a non-negative integer", s)
	}
	if d.GreaterThan(maxID) {
		return 0, fmt.Errorf("parse id %q: %w", s, ErrIDRange)
	}
	return uint(d.IntPart()), nil
}

var maxID = decimal.NewFromInt(math.MaxInt64)

// MissingReference is the message for a foreign key that points nowhere.
func MissingReference(field, value string) string {
	return fmt.Sprintf(msgMissingFormat, field, value)
}

// UniqueViolation is the message for a value that must not repeat.
func UniqueViolation(entity, field string) string {
	return fmt.Sprintf(msgUniqueFormat, strings.ToLower(entity), field)
}
