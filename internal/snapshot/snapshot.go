// Package snapshot defines the immutable market snapshot the evaluator
// consumes: one instrument, one timeframe, one point in time, with all
// indicator values precomputed upstream.
package snapshot

import "encoding/json"

// Field names as they appear on the wire.
const (
	FieldInstrument      = "instrument"
	FieldTimeframe       = "timeframe"
	FieldTimestamp       = "timestamp"
	FieldClose           = "close"
	FieldHigh            = "high"
	FieldLow             = "low"
	FieldRSI             = "RSI"
	FieldATR             = "ATR"
	FieldRSIDaily        = "RSI_DAILY"
	FieldEMA50Daily      = "EMA50_daily"
	FieldStrictMode      = "strict_mode"
	FieldCandleType      = "candle_type"
	FieldPattern         = "pattern"
	FieldDivergence      = "divergence"
	FieldRecentSwingLow  = "recent_swing_low"
	FieldRecentSwingHigh = "recent_swing_high"
)

// Required lists the fields every snapshot must carry, in the order they
// are checked and reported.
var Required = []string{
	FieldInstrument,
	FieldTimeframe,
	FieldClose,
	FieldHigh,
	FieldLow,
	FieldRSI,
	FieldATR,
}

// Snapshot is a read-only view over one market data record. A field can be
// absent, present with a null value, or present with a value; required-field
// validation distinguishes the first two, optional fields treat both as
// "not provided".
type Snapshot struct {
	fields map[string]any
}

// FromMap builds a Snapshot from a generic field map. The map is copied so
// later mutations by the caller do not leak into the snapshot.
func FromMap(m map[string]any) Snapshot {
	fields := make(map[string]any, len(m))
	for k, v := range m {
		fields[k] = v
	}
	return Snapshot{fields: fields}
}

// UnmarshalJSON decodes a snapshot from a JSON object. JSON null values are
// kept as present-but-null fields.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*s = FromMap(m)
	return nil
}

// Has reports whether the field key exists, null or not.
func (s Snapshot) Has(field string) bool {
	_, ok := s.fields[field]
	return ok
}

// IsNull reports whether the field key exists with a null value.
func (s Snapshot) IsNull(field string) bool {
	v, ok := s.fields[field]
	return ok && v == nil
}

// Provided reports whether the field carries an actual value.
func (s Snapshot) Provided(field string) bool {
	v, ok := s.fields[field]
	return ok && v != nil
}

// Raw returns the field value as-is, nil when absent or null. Used for the
// passthrough fields that are echoed verbatim into the decision.
func (s Snapshot) Raw(field string) any {
	return s.fields[field]
}

// Float returns the field as a float64. The second result is false when the
// field is absent, null, or not numeric.
func (s Snapshot) Float(field string) (float64, bool) {
	v, ok := s.fields[field]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// String returns the field as a string. The second result is false when the
// field is absent, null, or not a string.
func (s Snapshot) String(field string) (string, bool) {
	v, ok := s.fields[field]
	if !ok || v == nil {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// Bool returns the field as a bool, false when absent, null, or not a bool.
func (s Snapshot) Bool(field string) bool {
	v, ok := s.fields[field]
	if !ok || v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}
