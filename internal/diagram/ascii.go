package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/fubueng/gostringer/internal/format"
	"github.com/fubueng/gostringer/internal/zone"
)

// DrawASCIIZoneChart renders per-zone stringer weights as a terminal
// chart with a zone legend underneath. Zones appear in summary order
// (ascending by name).
func DrawASCIIZoneChart(summaries []zone.Summary) string {
	if len(summaries) == 0 {
		return "  (no zones)\n"
	}

	weights := make([]float64, len(summaries))
	for i, s := range summaries {
		weights[i] = s.TotalWeightKg
	}

	var sb strings.Builder
	sb.WriteString(asciigraph.Plot(weights,
		asciigraph.Height(10),
		asciigraph.Width(4*len(weights)+8),
		asciigraph.Caption("Zone stringer weight (kg)"),
	))
	sb.WriteString("\n\n")

	for i, s := range summaries {
		sb.WriteString(fmt.Sprintf("  [%d] %-20s %s kg", i, s.ZoneName, format.Value(s.TotalWeightKg)))
		if s.TotalDuckFeetKg > 0 {
			sb.WriteString(fmt.Sprintf("  (+%s kg duck feet)", format.Value(s.TotalDuckFeetKg)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
