package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fubueng/gostringer/internal/props"
	"github.com/fubueng/gostringer/internal/stringer"
	"github.com/fubueng/gostringer/internal/zone"
)

func TestSavePropertiesRecomputesEverything(t *testing.T) {
	rows := []stringer.Record{
		{Name: "A_TYPE1", FrameID: "F1", ZoneName: "Z1", PitchMM: 100, FrameLengthMM: 1000, CrossSectionMM2: 50},
		{Name: "B_TYPE1", FrameID: "F2", ZoneName: "Z1", PitchMM: 80, FrameLengthMM: 500, CrossSectionMM2: 50},
	}
	panels := []zone.Panel{{Name: "Z1"}, {Name: "Z9"}}

	edit := props.Edit{
		StringerThicknessMM: "2",
		StringerDensityGCm3: "2.7",
		DuckFeetSelection:   "Yes",
		StringerWidthMM:     "40",
		StripWidthMM:        "10",
	}

	result := SaveProperties(edit, rows, panels, props.Properties{}, zap.NewNop())

	require.True(t, result.OK)
	assert.Equal(t, "Global properties saved!", result.Message)

	// Merged properties carry the table totals.
	assert.Equal(t, 2, result.Properties.TotalStringers)
	assert.Equal(t, 180.0, result.Properties.TotalStringerPitchMM)
	assert.Equal(t, 2.7, result.Properties.StringerDensityGCm3)

	// Rows were refreshed against the merged values, cross-sections kept.
	require.Len(t, result.Rows, 2)
	assert.Equal(t, 50.0, result.Rows[0].CrossSectionMM2)
	assert.Equal(t, 135.0, result.Rows[0].WeightG)
	assert.True(t, result.Rows[0].DuckFeetApplied)
	assert.Greater(t, result.Rows[0].DuckFeetKg, 0.0)

	// Panels were re-annotated; density lands on the unmatched one too.
	require.Len(t, result.Panels, 2)
	assert.Equal(t, result.Rows[0].WeightG+result.Rows[1].WeightG, result.Panels[0].TotalStringerWeightG)
	assert.Equal(t, 2.7, result.Panels[1].StringerDensityGCm3)
	assert.Zero(t, result.Panels[1].TotalStringerWeightG)

	// The caller's inputs are untouched.
	assert.Zero(t, rows[0].WeightG)
	assert.Zero(t, panels[0].StringerDensityGCm3)
}

// A density that fails to parse saves as 0 and zeroes the weights; the
// save still reports success.
func TestSavePropertiesBadDensity(t *testing.T) {
	rows := []stringer.Record{
		{Name: "A_TYPE1", FrameID: "F1", ZoneName: "Z1", FrameLengthMM: 1000, CrossSectionMM2: 50, WeightG: 135},
	}

	edit := props.Edit{StringerDensityGCm3: "abc"}
	result := SaveProperties(edit, rows, nil, props.Properties{StringerDensityGCm3: 2.7}, nil)

	require.True(t, result.OK)
	assert.Zero(t, result.Properties.StringerDensityGCm3)
	assert.Zero(t, result.Rows[0].WeightG)
}

func TestSavePropertiesEmptyTable(t *testing.T) {
	current := props.Properties{TotalStringers: 7, TotalStringerPitchMM: 700}

	result := SaveProperties(props.Edit{StringerThicknessMM: "1"}, nil, nil, current, zap.NewNop())

	require.True(t, result.OK)
	assert.Empty(t, result.Rows)
	// With no table there is nothing to count; the stored totals stand.
	assert.Equal(t, 7, result.Properties.TotalStringers)
	assert.Equal(t, 700.0, result.Properties.TotalStringerPitchMM)
}
