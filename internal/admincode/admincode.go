// Package admincode derives the administrative code of a record from its
// province and regency codes.
package admincode

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pkrms_db/internal/record"
	"pkrms_db/internal/schema"
	"pkrms_db/internal/validation"
)

// Format joins a province code with a two-digit regency code: (3, 7) gives "307".
func Format(province, kabupaten int64) string {
	return fmt.Sprintf("%d%02d", province, kabupaten)
}

// Derive returns a copy of rec with admin_code filled in when it is absent
// and both province_code and kabupaten_code hold non-negative whole numbers.
// A supplied admin_code is never replaced.
func Derive(rec record.Record) record.Record {
	out := rec.Clone()
	if !rec.Absent(schema.FieldAdminCode) {
		return out
	}
	p, ok := code(rec, schema.FieldProvinceCode)
	if !ok {
		return out
	}
	k, ok := code(rec, schema.FieldKabupatenCode)
	if !ok {
		return out
	}
	out[schema.FieldAdminCode] = Format(p, k)
	return out
}

var maxCode = decimal.NewFromInt(99999)

func code(rec record.Record, field string) (int64, bool) {
	s, ok := rec.String(field)
	if !ok {
		return 0, false
	}
	d, err := validation.ParseDecimal(s)
	if err != nil || !d.IsInteger() || d.IsNegative() || d.GreaterThan(maxCode) {
		return 0, false
	}
	return d.IntPart(), true
}
