// Package table loads and stores the tabular inputs and outputs of the
// engine: the stringer table as CSV, the cross-section lookup, global
// properties and panel list as JSON.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fubueng/gostringer/internal/format"
	"github.com/fubueng/gostringer/internal/stringer"
)

// Source table column headers
const (
	colName        = "stringer_name"
	colFrameID     = "frame_id"
	colZoneName    = "zone_name"
	colPitch       = "stringer_pitch_mm"
	colFrameLength = "frame_length_pitch_mm"
)

// derived output column headers, in write order
var derivedCols = []string{
	"stringer_thickness_mm",
	"stringer_density_g_cm3",
	"duck_feet_applied",
	"cross_section_mm2",
	"duck_feet_kg",
	"weight_g",
}

// ReadRows loads the stringer table from a CSV file. Columns are matched
// by header name, extra columns are ignored, and missing or malformed
// numeric cells coerce to 0. Only a missing file or unreadable CSV is an
// error; row content never is.
func ReadRows(path string) ([]stringer.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stringer table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read stringer table %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	idx := headerIndex(records[0])
	rows := make([]stringer.Record, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, stringer.Record{
			Name:          cell(rec, idx.col(colName)),
			FrameID:       stringer.FrameID(cell(rec, idx.col(colFrameID))),
			ZoneName:      cell(rec, idx.col(colZoneName)),
			PitchMM:       stringer.ParseNumber(cell(rec, idx.col(colPitch))),
			FrameLengthMM: stringer.ParseNumber(cell(rec, idx.col(colFrameLength))),
		})
	}
	return rows, nil
}

// WriteRows stores the full table, source and derived columns, as CSV.
// Derived values are rendered under the shared display rule.
func WriteRows(path string, rows []stringer.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create stringer table: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{colName, colFrameID, colZoneName, colPitch, colFrameLength}, derivedCols...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write stringer table header: %w", err)
	}

	for _, r := range rows {
		rec := []string{
			r.Name,
			r.FrameID.String(),
			r.ZoneName,
			format.Value(r.PitchMM.Float()),
			format.Value(r.FrameLengthMM.Float()),
			format.Value(r.ThicknessMM),
			format.Value(r.DensityGCm3),
			strconv.FormatBool(r.DuckFeetApplied),
			format.Value(r.CrossSectionMM2),
			format.Value(r.DuckFeetKg),
			format.Value(r.WeightG),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write stringer table row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush stringer table: %w", err)
	}
	return nil
}

type headerIdx map[string]int

func headerIndex(header []string) headerIdx {
	idx := make(headerIdx, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

// col returns the column position for a header name, -1 when the column
// is absent so its cells read as empty.
func (h headerIdx) col(name string) int {
	if i, ok := h[name]; ok {
		return i
	}
	return -1
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
