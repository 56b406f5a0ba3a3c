package zone

import (
	"sort"

	"github.com/fubueng/gostringer/internal/format"
	"github.com/fubueng/gostringer/internal/stringer"
)

// Summary is the aggregate for one distinct zone name found in the
// stringer table.
type Summary struct {
	ZoneName        string  `json:"zone_name"`
	TotalWeightKg   float64 `json:"total_weight_kg"`
	TotalDuckFeetKg float64 `json:"total_duck_feet_kg"`
}

// Totals holds the unrounded per-zone sums in source units, used for
// panel annotation where no display rounding must be applied.
type Totals struct {
	WeightG    float64
	DuckFeetKg float64
}

// SumByZone groups derived records by zone name and sums weight and duck
// feet mass per group. Records with an empty zone name group under "".
func SumByZone(rows []stringer.Record) map[string]Totals {
	sums := make(map[string]Totals, len(rows))
	for _, r := range rows {
		t := sums[r.ZoneName]
		t.WeightG += r.WeightG
		t.DuckFeetKg += r.DuckFeetKg
		sums[r.ZoneName] = t
	}
	return sums
}

// Summarize reduces derived records to one Summary per distinct zone,
// weight converted to kilograms, both columns rounded under the shared
// display rule, sorted ascending by zone name. An empty row set yields an
// empty result, never an error.
func Summarize(rows []stringer.Record) []Summary {
	if len(rows) == 0 {
		return nil
	}

	sums := SumByZone(rows)
	out := make([]Summary, 0, len(sums))
	for name, t := range sums {
		out = append(out, Summary{
			ZoneName:        name,
			TotalWeightKg:   format.Round(t.WeightG / 1000),
			TotalDuckFeetKg: format.Round(t.DuckFeetKg),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ZoneName < out[j].ZoneName })
	return out
}
