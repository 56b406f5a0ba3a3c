package geometry

import (
	"math"
	"strings"
)

// Stringer Mass Formula Constants

const (
	// Unit conversion factors
	MM2PerCM2 = 100.0 // mm² per cm²
	MMPerCM   = 10.0  // mm per cm

	// Duck feet corner relief radius
	DuckFeetCornerRadiusMM = 20.0 // mm

	// mm³ × (g/cm³) → kg:
	// area(mm²) × thickness(mm) = volume(mm³); ÷1000 gives cm³,
	// × density gives grams, ÷1000 gives kg. The combined 1e6 divisor
	// is fixed to match reference output; do not rederive.
	DuckFeetMassDivisor = 1e6
)

// DuckFeetCurveAreaMM2 is the fixed circular-corner relief area of a duck
// foot: the complement of a quarter circle of radius 20 mm, (4 - π)(20²/2).
// It is a geometric constant of the part, not configurable.
var DuckFeetCurveAreaMM2 = (4 - math.Pi) * (DuckFeetCornerRadiusMM * DuckFeetCornerRadiusMM / 2)

// Lookup maps a stringer type code to a frame-position table of
// cross-sectional areas in mm². Supplied externally, read-only here.
type Lookup map[string]map[string]float64

// TypeCode extracts the cross-section type code from a stringer name:
// the substring after the last underscore, trimmed of whitespace.
// A name with no underscore is its own type code.
func TypeCode(stringerName string) string {
	parts := strings.Split(stringerName, "_")
	return strings.TrimSpace(parts[len(parts)-1])
}

// CrossSection looks up the cross-sectional area (mm²) for a stringer name
// and frame position. An empty name, unknown type code or unknown frame ID
// yields 0.0, never an error.
func CrossSection(stringerName, frameID string, lookup Lookup) float64 {
	if stringerName == "" {
		return 0
	}
	table, ok := lookup[TypeCode(stringerName)]
	if !ok {
		return 0
	}
	return table[strings.TrimSpace(frameID)]
}

// DuckFeetStripArea calculates the flat strip area (mm²) attached beyond
// the stringer footprint. A pitch narrower than the stringer width yields
// no strip, so the term is clamped at zero.
func DuckFeetStripArea(pitchMM, stringerWidthMM, stripWidthMM float64) float64 {
	return math.Max(pitchMM-stringerWidthMM, 0) * stripWidthMM
}

// DuckFeetMassKg converts a duck-feet area (mm²) to mass (kg) given sheet
// thickness (mm) and material density (g/cm³).
func DuckFeetMassKg(areaMM2, thicknessMM, densityGCm3 float64) float64 {
	return areaMM2 * thicknessMM * densityGCm3 / DuckFeetMassDivisor
}

// StringerMassG calculates the mass (g) of a stringer segment from its
// cross-sectional area (mm²), frame length (mm) and density (g/cm³):
// area is converted to cm², length to cm, and the product taken with
// density.
func StringerMassG(crossSectionMM2, frameLengthMM, densityGCm3 float64) float64 {
	areaCM2 := crossSectionMM2 / MM2PerCM2
	lengthCM := frameLengthMM / MMPerCM
	return areaCM2 * lengthCM * densityGCm3
}
