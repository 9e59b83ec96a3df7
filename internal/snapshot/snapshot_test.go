package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapCopiesInput(t *testing.T) {
	m := map[string]any{FieldClose: 1.5}
	snap := FromMap(m)

	m[FieldClose] = 99.0
	m[FieldRSI] = 50.0

	v, ok := snap.Float(FieldClose)
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)
	assert.False(t, snap.Has(FieldRSI))
}

func TestPresenceAndNull(t *testing.T) {
	snap := FromMap(map[string]any{
		FieldClose: 1.5,
		FieldATR:   nil,
	})

	tests := []struct {
		name     string
		field    string
		has      bool
		isNull   bool
		provided bool
	}{
		{"value present", FieldClose, true, false, true},
		{"explicit null", FieldATR, true, true, false},
		{"absent", FieldRSI, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.has, snap.Has(tt.field))
			assert.Equal(t, tt.isNull, snap.IsNull(tt.field))
			assert.Equal(t, tt.provided, snap.Provided(tt.field))
		})
	}
}

func TestUnmarshalJSONKeepsNullDistinct(t *testing.T) {
	var snap Snapshot
	err := json.Unmarshal([]byte(`{"close": 1.1, "ATR": null}`), &snap)
	require.NoError(t, err)

	assert.True(t, snap.Has(FieldClose))
	assert.True(t, snap.Has(FieldATR))
	assert.True(t, snap.IsNull(FieldATR))
	assert.False(t, snap.Has(FieldRSI))
}

func TestFloatCoercion(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
		ok       bool
	}{
		{"float64", 42.5, 42.5, true},
		{"float32", float32(2.0), 2.0, true},
		{"int", 7, 7.0, true},
		{"int64", int64(9), 9.0, true},
		{"json.Number", json.Number("3.25"), 3.25, true},
		{"string", "1.5", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := FromMap(map[string]any{FieldClose: tt.value})
			v, ok := snap.Float(FieldClose)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, v)
		})
	}

	t.Run("absent field", func(t *testing.T) {
		snap := FromMap(map[string]any{})
		_, ok := snap.Float(FieldClose)
		assert.False(t, ok)
	})
}

func TestStringAndBool(t *testing.T) {
	snap := FromMap(map[string]any{
		FieldCandleType: "hammer",
		FieldDivergence: true,
		FieldPattern:    12.0,
		FieldStrictMode: nil,
	})

	s, ok := snap.String(FieldCandleType)
	assert.True(t, ok)
	assert.Equal(t, "hammer", s)

	_, ok = snap.String(FieldPattern)
	assert.False(t, ok)

	assert.True(t, snap.Bool(FieldDivergence))
	assert.False(t, snap.Bool(FieldStrictMode))
	assert.False(t, snap.Bool(FieldRecentSwingLow))
}

func TestRawPassthrough(t *testing.T) {
	snap := FromMap(map[string]any{FieldTimestamp: "2024-01-02T03:04:05Z"})
	assert.Equal(t, "2024-01-02T03:04:05Z", snap.Raw(FieldTimestamp))
	assert.Nil(t, snap.Raw(FieldInstrument))
}

func TestRequiredOrder(t *testing.T) {
	assert.Equal(t, []string{
		FieldInstrument, FieldTimeframe, FieldClose, FieldHigh, FieldLow, FieldRSI, FieldATR,
	}, Required)
}
