package stringer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is an optional numeric table cell. Missing, empty or malformed
// input coerces to 0, a single rule applied uniformly so that one bad
// cell never aborts a batch.
type Number float64

// ParseNumber converts a raw cell string to a Number under the coercion
// rule: anything that does not parse as a finite float becomes 0.
func ParseNumber(s string) Number {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Number(v)
}

// Float returns the value with non-finite inputs coerced to 0.
func (n Number) Float() float64 {
	v := float64(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// UnmarshalJSON accepts a JSON number, a numeric string, null, or any
// other malformed cell, coercing non-numeric input to 0.
func (n *Number) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*n = Number(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = ParseNumber(s)
		return nil
	}
	*n = 0
	return nil
}

// FrameID is a frame position key. Source tables carry it as either a
// string or a number; it is normalized to a trimmed string for lookup.
type FrameID string

// UnmarshalJSON accepts a JSON string or number; anything else becomes
// the empty ID.
func (f *FrameID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FrameID(strings.TrimSpace(s))
		return nil
	}
	var v json.Number
	if err := json.Unmarshal(data, &v); err == nil {
		*f = FrameID(v.String())
		return nil
	}
	*f = ""
	return nil
}

// String returns the normalized lookup key.
func (f FrameID) String() string {
	return strings.TrimSpace(string(f))
}

// Record is one physical stringer segment. The first block of fields is
// loaded from the source table; the derived block is fully recomputed by
// Derive on every pass and is never partially stale.
type Record struct {
	// Source fields
	Name          string  `json:"stringer_name"`
	FrameID       FrameID `json:"frame_id"`
	ZoneName      string  `json:"zone_name"`
	PitchMM       Number  `json:"stringer_pitch_mm"`
	FrameLengthMM Number  `json:"frame_length_pitch_mm"`

	// Derived fields
	ThicknessMM     float64 `json:"stringer_thickness_mm"`
	DensityGCm3     float64 `json:"stringer_density_g_cm3"`
	DuckFeetApplied bool    `json:"duck_feet_applied"`
	CrossSectionMM2 float64 `json:"cross_section_mm2"`
	DuckFeetKg      float64 `json:"duck_feet_kg"`
	WeightG         float64 `json:"weight_g"`
}
