// Package store drives the properties-save mutation: validate and merge a
// property edit, re-derive the stringer table, re-annotate panels, and
// hand back the new canonical state in one piece.
package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fubueng/gostringer/internal/props"
	"github.com/fubueng/gostringer/internal/stringer"
	"github.com/fubueng/gostringer/internal/zone"
)

// SaveResult is the outcome of a properties save. When OK is false the
// Properties, Rows and Panels fields carry the caller's inputs unchanged;
// a failed save never produces a partial write.
type SaveResult struct {
	Properties props.Properties
	Rows       []stringer.Record
	Panels     []zone.Panel

	OK      bool
	Message string
}

// SaveProperties merges the edit into the current properties, refreshes
// the derived fields of every row against the merged values, stores the
// row count and pitch total back into the properties, and re-annotates
// the panel list. Cross-sections are not recomputed on this path; each
// row keeps its stored area.
//
// Unparsable numeric edit fields default to 0 and still save. Any other
// failure is caught at this boundary, logged, and reported through the
// result status with all outputs left as they came in.
func SaveProperties(edit props.Edit, rows []stringer.Record, panels []zone.Panel, current props.Properties, log *zap.Logger) (result SaveResult) {
	if log == nil {
		log = zap.NewNop()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("properties save failed", zap.Any("cause", r))
			result = SaveResult{
				Properties: current,
				Rows:       rows,
				Panels:     panels,
				OK:         false,
				Message:    fmt.Sprintf("Error: %v", r),
			}
		}
	}()

	merged := edit.Apply(current)

	newRows := rows
	if len(rows) > 0 {
		newRows = stringer.Refresh(rows, merged)
		merged.TotalStringers = len(newRows)
		merged.TotalStringerPitchMM = stringer.TotalPitchMM(newRows)
	}

	newPanels := zone.AnnotatePanels(panels, newRows, merged)

	log.Info("global properties saved",
		zap.Float64("thickness_mm", merged.StringerThicknessMM),
		zap.Float64("density_g_cm3", merged.StringerDensityGCm3),
		zap.String("duck_feet", merged.DuckFeetSelection),
		zap.Int("stringers", len(newRows)),
		zap.Int("panels", len(newPanels)),
	)

	return SaveResult{
		Properties: merged,
		Rows:       newRows,
		Panels:     newPanels,
		OK:         true,
		Message:    "Global properties saved!",
	}
}
