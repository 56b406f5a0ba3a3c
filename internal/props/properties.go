package props

import (
	"math"
	"strconv"
	"strings"
)

// Duck feet selection values
const (
	DuckFeetYes = "Yes"
	DuckFeetNo  = "No"
)

// Properties is the snapshot of global material and geometry settings
// applied to every stringer record. It is passed by value into the
// calculation operations; the persisted copy is owned by the caller.
type Properties struct {
	// Edited settings
	StringerThicknessMM float64 `json:"stringer_thickness_mm" yaml:"stringer_thickness_mm"`
	StringerDensityGCm3 float64 `json:"stringer_density_g_cm3" yaml:"stringer_density_g_cm3"`
	DuckFeetSelection   string  `json:"duck_feet_selection" yaml:"duck_feet_selection"` // "Yes" or "No"
	StringerWidthMM     float64 `json:"stringer_width_mm" yaml:"stringer_width_mm"`
	StripWidthMM        float64 `json:"strip_width_mm" yaml:"strip_width_mm"`

	// Derived summary scalars, written back on every properties save
	TotalStringers       int     `json:"total_stringers" yaml:"total_stringers"`
	TotalStringerPitchMM float64 `json:"total_stringer_pitch_mm" yaml:"total_stringer_pitch_mm"`
}

// DuckFeetApplied reports whether duck feet reinforcement is enabled.
func (p Properties) DuckFeetApplied() bool {
	return p.DuckFeetSelection == DuckFeetYes
}

// Edit carries one round of raw property inputs from the UI. Fields are
// kept as strings so that absent or unparsable numeric input can default
// to 0 instead of failing the save.
type Edit struct {
	StringerThicknessMM string
	StringerDensityGCm3 string
	DuckFeetSelection   string
	StringerWidthMM     string
	StripWidthMM        string
}

// Apply merges the five edited fields into a copy of p, overwriting them
// and leaving every other field untouched. Numeric fields that fail to
// parse become 0; this never errors.
func (e Edit) Apply(p Properties) Properties {
	p.StringerThicknessMM = parseNumeric(e.StringerThicknessMM)
	p.StringerDensityGCm3 = parseNumeric(e.StringerDensityGCm3)
	p.DuckFeetSelection = normalizeDuckFeet(e.DuckFeetSelection)
	p.StringerWidthMM = parseNumeric(e.StringerWidthMM)
	p.StripWidthMM = parseNumeric(e.StripWidthMM)
	return p
}

func parseNumeric(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func normalizeDuckFeet(s string) string {
	if strings.TrimSpace(s) == DuckFeetYes {
		return DuckFeetYes
	}
	return DuckFeetNo
}
