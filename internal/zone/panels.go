package zone

import (
	"github.com/fubueng/gostringer/internal/props"
	"github.com/fubueng/gostringer/internal/stringer"
)

// Panel is the slice of a panel record this engine is allowed to write.
// Panels are owned by another subsystem; only the three total/density
// fields below are set here, the rest of the record is untouched.
type Panel struct {
	Name                 string  `json:"name"`
	TotalStringerWeightG float64 `json:"total_stringer_weight_g"`
	TotalDuckFeetKg      float64 `json:"total_duck_feet_kg"`
	StringerDensityGCm3  float64 `json:"stringer_density_g_cm3"`
}

// AnnotatePanels merges per-zone stringer totals onto the panel list by
// matching panel name against zone name, and copies the global stringer
// density onto every panel whether or not it matched a zone. Returns a
// new slice in the caller's order; the input panels are not mutated.
func AnnotatePanels(panels []Panel, rows []stringer.Record, p props.Properties) []Panel {
	sums := SumByZone(rows)

	out := make([]Panel, len(panels))
	for i, panel := range panels {
		if t, ok := sums[panel.Name]; ok {
			panel.TotalStringerWeightG = t.WeightG
			panel.TotalDuckFeetKg = t.DuckFeetKg
		}
		// Density applies to every panel, matched or not.
		panel.StringerDensityGCm3 = p.StringerDensityGCm3
		out[i] = panel
	}
	return out
}
