package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkrms_db/internal/record"
	"pkrms_db/internal/schema"
)

func lookup(t *testing.T, name string) *schema.Entity {
	t.Helper()
	e, ok := schema.Default().Lookup(name)
	require.True(t, ok)
	return e
}

func TestFields_Required(t *testing.T) {
	v := New()
	e := lookup(t, schema.RoadCondition)

	errs := v.Fields(e, record.Record{
		"year":         "2024",
		"admin_code":   "  ",
		"link_no":      "L1",
		"chainagefrom": "0",
		"chainageto":   nil,
	})

	assert.Equal(t, []string{MsgRequired}, errs["admin_code"])
	assert.Equal(t, []string{MsgRequired}, errs["chainageto"])
	assert.Equal(t, []string{MsgRequired}, errs["surveydate"])
	assert.NotContains(t, errs, "year")
	assert.NotContains(t, errs, "chainagefrom")
}

func TestFields_Kinds(t *testing.T) {
	v := New()
	e := lookup(t, schema.Alignment)

	errs := v.Fields(e, record.Record{
		"id":                      "abc",
		"admin_code":              "307",
		"link_no":                 "L1",
		"chainage":                "ten",
		"section_wkt_line_string": "POINT (1 2)",
	})
	assert.Equal(t, []string{MsgInteger}, errs["id"])
	assert.Equal(t, []string{MsgNumber}, errs["chainage"])
	assert.Equal(t, []string{MsgLineString}, errs["section_wkt_line_string"])

	errs = v.Fields(e, record.Record{
		"id":                      "4.0",
		"admin_code":              "307",
		"link_no":                 "L1",
		"chainage":                "10.5",
		"section_wkt_line_string": "LINESTRING (106.8 -6.2, 106.9 -6.3)",
	})
	assert.True(t, errs.Empty(), errs.Error())
}

func TestFields_NotScalar(t *testing.T) {
	v := New()
	errs := v.Fields(lookup(t, schema.Link), record.Record{
		"link_no":            map[string]any{"a": "b"},
		"link_length_actual": "1.2",
	})
	assert.Equal(t, []string{MsgNotScalar}, errs["link_no"])
}

func TestFields_FormData(t *testing.T) {
	v := New()
	e := lookup(t, schema.FormData)

	valid := record.Record{
		"status":            "provincial",
		"selected_province": "Jawa Barat",
		"lg_name":           "Dinas PU",
		"email":             "pu@example.go.id",
		"phone":             "+6281234567890",
	}
	assert.True(t, v.Fields(e, valid).Empty())

	kab := valid.Overlay(record.Record{"status": "kabupaten"})
	assert.Equal(t, []string{MsgRequired}, v.Fields(e, kab)["selected_kabupaten"])

	bad := valid.Overlay(record.Record{"status": "city", "email": "nope", "phone": "12345"})
	errs := v.Fields(e, bad)
	assert.Equal(t, []string{`"city" is not a valid choice.`}, errs["status"])
	assert.Equal(t, []string{MsgEmail}, errs["email"])
	assert.Equal(t, []string{MsgPhone}, errs["phone"])

	assert.True(t, v.Fields(e, valid.Overlay(record.Record{"phone": "081234567"})).Empty())
}

func TestParseID(t *testing.T) {
	id, err := ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	id, err = ParseID("7.0")
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	_, err = ParseID("1.5")
	assert.Error(t, err)
	_, err = ParseID("-3")
	assert.Error(t, err)

	for _, s := range []string{"18446744073709551617", "9223372036854775808", "1e40"} {
		_, err = ParseID(s)
		assert.ErrorIs(t, err, ErrIDRange, s)
	}
	id, err = ParseID("9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, uint(math.MaxInt64), id)

	_, err = ParseID("1e-40")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrIDRange)
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal(" 1.5e3 ")
	require.NoError(t, err)
	assert.Equal(t, "1500", d.String())

	for _, s := range []string{"1e20000000", "1e-20000000", strings.Repeat("9", 65)} {
		_, err = ParseDecimal(s)
		assert.ErrorIs(t, err, ErrDecimalRange, s)
	}
	_, err = ParseDecimal("ten")
	assert.Error(t, err)
}

func TestFields_NumberRange(t *testing.T) {
	v := New()
	e := lookup(t, schema.Alignment)

	errs := v.Fields(e, record.Record{
		"id":                      "99999999999999999999",
		"admin_code":              "307",
		"link_no":                 "L1",
		"chainage":                "1e20000000",
		"section_wkt_line_string": "LINESTRING (106.8 -6.2, 106.9 -6.3)",
	})
	assert.Equal(t, []string{MsgNumber}, errs["chainage"])
	assert.NotContains(t, errs, "id", "a whole number too large to address a row is still an integer")
}

func TestFieldErrors(t *testing.T) {
	errs := FieldErrors{}
	assert.NoError(t, errs.Err())

	errs.Add("b", "second")
	errs.Merge(FieldErrors{"a": {"first"}})
	assert.Error(t, errs.Err())
	assert.Equal(t, "a: first; b: second", errs.Error())
}
