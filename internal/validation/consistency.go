package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pkrms_db/internal/record"
	"pkrms_db/internal/schema"
)

// Tolerance is how far, in metres, a chainage may run past the link length.
var Tolerance = decimal.NewFromInt(50)

var metresPerKm = decimal.NewFromInt(1000)

// Consistency failure kinds.
const (
	KindNegative       = "negative_chainage"
	KindBeyondLink     = "beyond_link"
	KindLengthMismatch = "length_mismatch"
	KindRangeOrder     = "range_order"
	KindOverlap        = "overlap"
	KindLinkLength     = "invalid_link_length"
)

// ConsistencyError describes a record that disagrees with its Link or with
// sibling records on the same Link. The magnitudes are in metres.
type ConsistencyError struct {
	Kind         string           `json:"kind"`
	Field        string           `json:"field,omitempty"`
	Message      string           `json:"message"`
	Chainage     *decimal.Decimal `json:"chainage,omitempty"`
	From         *decimal.Decimal `json:"from,omitempty"`
	To           *decimal.Decimal `json:"to,omitempty"`
	ConflictFrom *decimal.Decimal `json:"conflict_from,omitempty"`
	ConflictTo   *decimal.Decimal `json:"conflict_to,omitempty"`
	Overlap      *decimal.Decimal `json:"overlap,omitempty"`
	LinkLength   *decimal.Decimal `json:"link_length,omitempty"`
	Difference   *decimal.Decimal `json:"difference,omitempty"`
}

func (e *ConsistencyError) Error() string { return e.Message }

// Segment is one [From, To) range on a Link.
type Segment struct {
	ID   uint
	From decimal.Decimal
	To   decimal.Decimal
}

func (s Segment) same(o Segment) bool {
	return s.From.Equal(o.From) && s.To.Equal(o.To)
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func meters(d decimal.Decimal) string { return d.StringFixed(1) + "m" }

// LinkLengthMeters converts the stored link_length_actual in kilometres.
func LinkLengthMeters(km string) (decimal.Decimal, error) {
	d, err := ParseDecimal(km)
	if err != nil {
		return decimal.Zero, fmt.Errorf("link length %q: %w", km, err)
	}
	return d.Mul(metresPerKm), nil
}

// CheckWithinLink rejects a chainage below zero or more than Tolerance past
// the end of the link.
func CheckWithinLink(field string, chainage, linkLen decimal.Decimal) *ConsistencyError {
	if chainage.IsNegative() {
		return &ConsistencyError{
			Kind:     KindNegative,
			Field:    field,
			Message:  "Chainage must not be negative.",
			Chainage: ptr(chainage),
		}
	}
	over := chainage.Sub(linkLen)
	if over.GreaterThan(Tolerance) {
		return &ConsistencyError{
			Kind:  KindBeyondLink,
			Field: field,
			Message: fmt.Sprintf(
				"Chainage Length Mismatch: the chainage (%s) exceeds the actual road length (%s) by more than %sm.",
				meters(chainage), meters(linkLen), Tolerance.String()),
			Chainage:   ptr(chainage),
			LinkLength: ptr(linkLen),
			Difference: ptr(over),
		}
	}
	return nil
}

// CheckNearLinkEnd requires a chainage within Tolerance of the link length
// on either side.
func CheckNearLinkEnd(field string, chainage, linkLen decimal.Decimal) *ConsistencyError {
	diff := chainage.Sub(linkLen).Abs()
	if diff.GreaterThan(Tolerance) {
		return &ConsistencyError{
			Kind:  KindLengthMismatch,
			Field: field,
			Message: fmt.Sprintf(
				"Chainage Length Mismatch: the total chainage (%s) differs from the actual road length (%s) by %s. "+
					"All segments must connect and the total must be within %sm of the road length.",
				meters(chainage), meters(linkLen), meters(diff), Tolerance.String()),
			Chainage:   ptr(chainage),
			LinkLength: ptr(linkLen),
			Difference: ptr(diff),
		}
	}
	return nil
}

// CheckSegment validates a candidate range against the other ranges stored
// on the same link. Identical ranges and the candidate itself are ignored by
// the overlap test. When the candidate ends furthest along the link its end
// must be near the link length. A lone candidate only has to stay within it,
// since later segments may still fill the rest of the link.
func CheckSegment(c Segment, siblings []Segment, linkLen decimal.Decimal) *ConsistencyError {
	if c.From.IsNegative() {
		return &ConsistencyError{
			Kind:     KindNegative,
			Message:  "Chainage must not be negative.",
			Chainage: ptr(c.From),
		}
	}
	if c.From.GreaterThanOrEqual(c.To) {
		return &ConsistencyError{
			Kind:    KindRangeOrder,
			Message: "ChainageFrom must be less than ChainageTo.",
			From:    ptr(c.From),
			To:      ptr(c.To),
		}
	}

	others := make([]Segment, 0, len(siblings))
	for _, s := range siblings {
		if c.ID != 0 && s.ID == c.ID {
			continue
		}
		others = append(others, s)
	}
	if len(others) == 0 {
		if err := CheckWithinLink("chainageto", c.To, linkLen); err != nil {
			err.From, err.To = ptr(c.From), ptr(c.To)
			return err
		}
		return nil
	}

	maxTo := c.To
	for _, s := range others {
		if s.To.GreaterThan(maxTo) {
			maxTo = s.To
		}
		if c.same(s) {
			continue
		}
		if c.From.LessThan(s.To) && c.To.GreaterThan(s.From) {
			overlap := decimal.Min(c.To, s.To).Sub(decimal.Max(c.From, s.From))
			return &ConsistencyError{
				Kind: KindOverlap,
				Message: fmt.Sprintf(
					"Chainage Overlap Error: the segment (%s to %s) overlaps an existing segment (%s to %s). "+
						"Start after %s or end before %s.",
					meters(c.From), meters(c.To), meters(s.From), meters(s.To), meters(s.To), meters(s.From)),
				From:         ptr(c.From),
				To:           ptr(c.To),
				ConflictFrom: ptr(s.From),
				ConflictTo:   ptr(s.To),
				Overlap:      ptr(overlap),
			}
		}
	}

	if c.To.Equal(maxTo) {
		if err := CheckNearLinkEnd("", maxTo, linkLen); err != nil {
			err.From, err.To = ptr(c.From), ptr(c.To)
			return err
		}
	}
	return nil
}

// CheckLinear applies the entity's linear-referencing rule. siblings are the
// stored records on the same link; self is the id of the record being
// updated, or zero for a new record.
func CheckLinear(e *schema.Entity, rec record.Record, self uint, siblings []record.Record, linkKm string) *ConsistencyError {
	if e.Linear == schema.LinearNone {
		return nil
	}
	linkLen, err := LinkLengthMeters(linkKm)
	if err != nil {
		return &ConsistencyError{
			Kind:    KindLinkLength,
			Message: fmt.Sprintf("Invalid link length value: %q.", linkKm),
		}
	}

	switch e.Linear {
	case schema.LinearWithinLink:
		for _, field := range e.Chainages {
			d, ok := decimalField(rec, field)
			if !ok {
				continue
			}
			if cerr := CheckWithinLink(field, d, linkLen); cerr != nil {
				return cerr
			}
		}
	case schema.LinearSegment:
		from, okFrom := decimalField(rec, e.Chainages[0])
		to, okTo := decimalField(rec, e.Chainages[1])
		if !okFrom || !okTo {
			return nil
		}
		c := Segment{ID: self, From: from, To: to}
		return CheckSegment(c, SegmentsFrom(e, siblings, self), linkLen)
	}
	return nil
}

// SegmentsFrom extracts the ranges of stored records, skipping self and any
// record whose chainages do not parse.
func SegmentsFrom(e *schema.Entity, recs []record.Record, self uint) []Segment {
	if len(e.Chainages) != 2 {
		return nil
	}
	out := make([]Segment, 0, len(recs))
	for _, r := range recs {
		var id uint
		if s, ok := r.String(record.IDField); ok {
			id, _ = ParseID(s)
		}
		if self != 0 && id == self {
			continue
		}
		from, okFrom := decimalField(r, e.Chainages[0])
		to, okTo := decimalField(r, e.Chainages[1])
		if !okFrom || !okTo {
			continue
		}
		out = append(out, Segment{ID: id, From: from, To: to})
	}
	return out
}

func decimalField(rec record.Record, field string) (decimal.Decimal, bool) {
	s, ok := rec.String(field)
	if !ok {
		return decimal.Zero, false
	}
	d, err := ParseDecimal(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
