package record

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeJSON(t *testing.T) {
	in := `{"a": NaN, "b": [1, Infinity, -Infinity], "c": "NaN stays", "d": "say \"NaN\""}`
	out := SanitizeJSON([]byte(in))

	var v map[string]any
	require.NoError(t, json.Unmarshal(out, &v))
	assert.Nil(t, v["a"])
	assert.Equal(t, []any{float64(1), nil, nil}, v["b"])
	assert.Equal(t, "NaN stays", v["c"])
	assert.Equal(t, `say "NaN"`, v["d"])
}

func TestDecodeBatch(t *testing.T) {
	batch, err := DecodeBatch([]byte(`{"Link": [{"LINK_NO": "001", "Link_Length_Actual": 1.25, "x": NaN}]}`))
	require.NoError(t, err)

	rows, ok := batch["Link"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)

	rec := Normalize(rows[0].(map[string]any))
	assert.Equal(t, "001", rec["link_no"])
	assert.Equal(t, "1.25", rec["link_length_actual"])
	assert.True(t, rec.Has("x"))
	assert.Nil(t, rec["x"])
}

func TestDecodeBatch_NotObject(t *testing.T) {
	_, err := DecodeBatch([]byte(`[1, 2]`))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = DecodeBatch([]byte(`{"broken"`))
	assert.Error(t, err)
}

func TestScalar(t *testing.T) {
	assert.Nil(t, Scalar(math.NaN()))
	assert.Nil(t, Scalar(math.Inf(1)))
	assert.Equal(t, "3", Scalar(float64(3)))
	assert.Equal(t, "0.5", Scalar(0.5))
	assert.Equal(t, "12", Scalar(12))
	assert.Equal(t, "true", Scalar(true))
	assert.Equal(t, "1.50", Scalar(json.Number("1.50")))

	nested := map[string]any{"a": 1}
	assert.Equal(t, nested, Scalar(nested))
}

func TestRecordHelpers(t *testing.T) {
	rec := Record{"a": " x ", "b": "", "c": nil, "d": "1"}

	s, ok := rec.String("a")
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	assert.True(t, rec.Absent("b"))
	assert.True(t, rec.Absent("c"))
	assert.True(t, rec.Absent("missing"))
	assert.False(t, rec.Absent("d"))
	assert.True(t, rec.Has("c"))

	merged := rec.Overlay(Record{"d": "2", "e": "3"})
	assert.Equal(t, "2", merged["d"])
	assert.Equal(t, "1", rec["d"])
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, merged.Keys())

	assert.NotContains(t, merged.Without("a", "e"), "a")
}
