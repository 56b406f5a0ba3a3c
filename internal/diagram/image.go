package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fubueng/gostringer/internal/zone"
)

// ExportZoneChart exports a bar chart of per-zone stringer and duck feet
// weights to an image file. The format follows the file extension
// (.png, .svg, .pdf).
func ExportZoneChart(summaries []zone.Summary, filename string) error {
	if len(summaries) == 0 {
		return fmt.Errorf("no zone summaries to chart")
	}

	p := plot.New()
	p.Title.Text = "Zone Stringer Weight Summary"
	p.X.Label.Text = "Zone"
	p.Y.Label.Text = "Weight (kg)"

	weights := make(plotter.Values, len(summaries))
	duckFeet := make(plotter.Values, len(summaries))
	labels := make([]string, len(summaries))
	for i, s := range summaries {
		weights[i] = s.TotalWeightKg
		duckFeet[i] = s.TotalDuckFeetKg
		labels[i] = s.ZoneName
	}

	barWidth := vg.Points(18)

	weightBars, err := plotter.NewBarChart(weights, barWidth)
	if err != nil {
		return err
	}
	weightBars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	weightBars.Offset = -barWidth / 2
	p.Add(weightBars)

	duckFeetBars, err := plotter.NewBarChart(duckFeet, barWidth)
	if err != nil {
		return err
	}
	duckFeetBars.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	duckFeetBars.Offset = barWidth / 2
	p.Add(duckFeetBars)

	p.Legend.Add("Stringer weight", weightBars)
	p.Legend.Add("Duck feet", duckFeetBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, filename)
}
