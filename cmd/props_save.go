package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fubueng/gostringer/internal/props"
	"github.com/fubueng/gostringer/internal/store"
	"github.com/fubueng/gostringer/internal/table"
)

var (
	saveThickness string
	saveDensity   string
	saveDuckFeet  string
	saveWidth     string
	saveStrip     string

	saveRowsPath   string
	savePanelsPath string
	savePropsPath  string
)

var propsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save global properties and recompute all derived state",
	Long: `Merge the given property values into the persisted global
properties, refresh the derived fields of every stringer record against
the new values, and re-annotate the panel list.

Numeric values that are absent or fail to parse default to 0; the save
still succeeds. Cross-sections are kept as stored on this path.

Examples:
  gostringer props save --thickness 2 --density 2.7 --duck-feet Yes \
      --width 40 --strip-width 10`,
	RunE: runPropsSave,
}

func init() {
	propsCmd.AddCommand(propsSaveCmd)

	propsSaveCmd.Flags().StringVar(&saveThickness, "thickness", "", "Stringer thickness (mm)")
	propsSaveCmd.Flags().StringVar(&saveDensity, "density", "", "Stringer density (g/cm³)")
	propsSaveCmd.Flags().StringVar(&saveDuckFeet, "duck-feet", "No", "Duck feet selection (Yes or No)")
	propsSaveCmd.Flags().StringVar(&saveWidth, "width", "", "Stringer width (mm)")
	propsSaveCmd.Flags().StringVar(&saveStrip, "strip-width", "", "Strip width (mm)")

	propsSaveCmd.Flags().StringVar(&saveRowsPath, "rows", "", "Persisted stringer table JSON (default from config)")
	propsSaveCmd.Flags().StringVar(&savePanelsPath, "panels", "", "Panel list JSON (default from config)")
	propsSaveCmd.Flags().StringVar(&savePropsPath, "props", "", "Global properties JSON (default from config)")
}

func runPropsSave(cmd *cobra.Command, args []string) error {
	propsPath := pick(savePropsPath, cfg.Data.Properties)
	current, err := table.ReadProperties(propsPath)
	if err != nil {
		return err
	}

	rowsPath := pick(saveRowsPath, cfg.Data.RowsJSON)
	rows, err := loadOptionalRows(rowsPath)
	if err != nil {
		return err
	}

	panelsPath := pick(savePanelsPath, cfg.Data.Panels)
	panels, err := loadOptionalPanels(panelsPath)
	if err != nil {
		return err
	}

	edit := props.Edit{
		StringerThicknessMM: saveThickness,
		StringerDensityGCm3: saveDensity,
		DuckFeetSelection:   saveDuckFeet,
		StringerWidthMM:     saveWidth,
		StripWidthMM:        saveStrip,
	}

	result := store.SaveProperties(edit, rows, panels, current, log)
	if !result.OK {
		fmt.Println(result.Message)
		return nil
	}

	if err := table.WriteProperties(propsPath, result.Properties); err != nil {
		return err
	}
	if len(result.Rows) > 0 {
		if err := table.WriteRowsJSON(rowsPath, result.Rows); err != nil {
			return err
		}
	}
	if len(result.Panels) > 0 {
		if err := table.WritePanels(panelsPath, result.Panels); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println(result.Message)
	fmt.Println()
	printProperties(result.Properties)
	return nil
}

func printProperties(p props.Properties) {
	fmt.Println("GLOBAL PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stringer Thickness:\t%.2f mm\n", p.StringerThicknessMM)
	fmt.Fprintf(w, "  Stringer Density:\t%.3f g/cm³\n", p.StringerDensityGCm3)
	fmt.Fprintf(w, "  Duck Feet:\t%s\n", p.DuckFeetSelection)
	fmt.Fprintf(w, "  Stringer Width:\t%.2f mm\n", p.StringerWidthMM)
	fmt.Fprintf(w, "  Strip Width:\t%.2f mm\n", p.StripWidthMM)
	fmt.Fprintf(w, "  Total Stringers:\t%d\n", p.TotalStringers)
	fmt.Fprintf(w, "  Total Stringer Pitch:\t%.2f mm\n", p.TotalStringerPitchMM)
	w.Flush()
	fmt.Println()
}
