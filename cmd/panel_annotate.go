package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fubueng/gostringer/internal/format"
	"github.com/fubueng/gostringer/internal/stringer"
	"github.com/fubueng/gostringer/internal/table"
	"github.com/fubueng/gostringer/internal/zone"
)

var (
	annotateRowsPath   string
	annotateLookupPath string
	annotatePropsPath  string
	annotatePanelsPath string
	annotateOut        string
)

var panelAnnotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Merge stringer totals onto the panel list",
	Long: `Derive the stringer table, sum weights per zone, and write the
totals onto each panel whose name matches a zone. The global stringer
density is copied onto every panel, matched or not.

Examples:
  gostringer panel annotate
  gostringer panel annotate --panels panels.json --out panels.json`,
	RunE: runPanelAnnotate,
}

func init() {
	panelCmd.AddCommand(panelAnnotateCmd)

	panelAnnotateCmd.Flags().StringVar(&annotateRowsPath, "rows", "", "Stringer table CSV (default from config)")
	panelAnnotateCmd.Flags().StringVar(&annotateLookupPath, "lookup", "", "Cross-section lookup JSON (default from config)")
	panelAnnotateCmd.Flags().StringVar(&annotatePropsPath, "props", "", "Global properties JSON (default from config)")
	panelAnnotateCmd.Flags().StringVar(&annotatePanelsPath, "panels", "", "Panel list JSON (default from config)")
	panelAnnotateCmd.Flags().StringVar(&annotateOut, "out", "", "Write the annotated panel list JSON (default: overwrite input)")
}

func runPanelAnnotate(cmd *cobra.Command, args []string) error {
	rows, lookup, props, err := loadDeriveInputs(annotateRowsPath, annotateLookupPath, annotatePropsPath)
	if err != nil {
		return err
	}

	panelsPath := pick(annotatePanelsPath, cfg.Data.Panels)
	panels, err := table.ReadPanels(panelsPath)
	if err != nil {
		return err
	}

	derived := stringer.Derive(rows, props, lookup)
	annotated := zone.AnnotatePanels(panels, derived, props)
	log.Info("panels annotated", zap.Int("panels", len(annotated)), zap.Int("rows", len(derived)))

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PANEL ANNOTATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Panel\tStringer Weight (g)\tDuck Feet (kg)\tDensity (g/cm³)")
	for _, p := range annotated {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
			p.Name,
			format.Value(p.TotalStringerWeightG),
			format.Value(p.TotalDuckFeetKg),
			format.Value(p.StringerDensityGCm3),
		)
	}
	w.Flush()
	fmt.Println()

	out := pick(annotateOut, panelsPath)
	if err := table.WritePanels(out, annotated); err != nil {
		return err
	}
	fmt.Printf("Annotated panels written to %s\n", out)
	return nil
}
