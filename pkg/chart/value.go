package chart

import (
	"encoding/json"
	"math"
)

var nan = math.NaN()

func isNaN(f float64) bool { return math.IsNaN(f) }

// Value is a float that encodes NaN and infinities as JSON null, so reports
// with missing data still serialize.
type Value float64

// IsKnown reports whether v is finite.
func (v Value) IsKnown() bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.IsKnown() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(v))
}

// UnmarshalJSON implements json.Unmarshaler. null decodes to NaN.
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Value(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*v = Value(f)
	return nil
}
