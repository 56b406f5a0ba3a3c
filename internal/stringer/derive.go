package stringer

import (
	"github.com/fubueng/gostringer/internal/geometry"
	"github.com/fubueng/gostringer/internal/props"
)

// Derive applies the global properties and cross-section lookup to every
// record and returns a new slice with all derived fields recomputed. It
// is a pure function of its inputs: the input slice is never mutated,
// malformed rows degrade to zero-valued derived fields, and identical
// inputs always produce identical output.
func Derive(rows []Record, p props.Properties, lookup geometry.Lookup) []Record {
	out := make([]Record, len(rows))
	for i, r := range rows {
		r.CrossSectionMM2 = geometry.CrossSection(r.Name, r.FrameID.String(), lookup)
		out[i] = deriveRow(r, p)
	}
	return out
}

// Refresh recomputes the thickness/density/pitch-dependent derived fields
// while keeping each record's existing cross-section. Used by the
// properties save path, where no cross-section lookup is available and
// the stored areas must not be discarded.
func Refresh(rows []Record, p props.Properties) []Record {
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = deriveRow(r, p)
	}
	return out
}

func deriveRow(r Record, p props.Properties) Record {
	r.ThicknessMM = p.StringerThicknessMM
	r.DensityGCm3 = p.StringerDensityGCm3
	r.DuckFeetApplied = p.DuckFeetApplied()

	if r.DuckFeetApplied {
		strip := geometry.DuckFeetStripArea(r.PitchMM.Float(), p.StringerWidthMM, p.StripWidthMM)
		r.DuckFeetKg = geometry.DuckFeetMassKg(strip+geometry.DuckFeetCurveAreaMM2, p.StringerThicknessMM, p.StringerDensityGCm3)
	} else {
		r.DuckFeetKg = 0
	}

	r.WeightG = geometry.StringerMassG(r.CrossSectionMM2, r.FrameLengthMM.Float(), p.StringerDensityGCm3)
	return r
}

// TotalPitchMM sums the pitch column across all records, with malformed
// cells already coerced to 0 at parse time.
func TotalPitchMM(rows []Record) float64 {
	var total float64
	for _, r := range rows {
		total += r.PitchMM.Float()
	}
	return total
}
