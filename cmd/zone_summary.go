package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fubueng/gostringer/internal/diagram"
	"github.com/fubueng/gostringer/internal/format"
	"github.com/fubueng/gostringer/internal/stringer"
	"github.com/fubueng/gostringer/internal/zone"
)

var (
	summaryRowsPath   string
	summaryLookupPath string
	summaryPropsPath  string
	summaryChart      bool
	summaryExport     string
)

var zoneSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize stringer weights per zone",
	Long: `Derive the stringer table and reduce it to one row per distinct
zone: total stringer weight (kg) and total duck feet weight (kg), sorted
by zone name.

Examples:
  # Print the zone summary table
  gostringer zone summary

  # With an ASCII chart and a PNG export
  gostringer zone summary --chart --export zones.png`,
	RunE: runZoneSummary,
}

func init() {
	zoneCmd.AddCommand(zoneSummaryCmd)

	zoneSummaryCmd.Flags().StringVar(&summaryRowsPath, "rows", "", "Stringer table CSV (default from config)")
	zoneSummaryCmd.Flags().StringVar(&summaryLookupPath, "lookup", "", "Cross-section lookup JSON (default from config)")
	zoneSummaryCmd.Flags().StringVar(&summaryPropsPath, "props", "", "Global properties JSON (default from config)")
	zoneSummaryCmd.Flags().BoolVar(&summaryChart, "chart", false, "Draw an ASCII chart of zone weights")
	zoneSummaryCmd.Flags().StringVar(&summaryExport, "export", "", "Export a zone weight chart image (.png, .svg, .pdf)")
}

func runZoneSummary(cmd *cobra.Command, args []string) error {
	rows, lookup, props, err := loadDeriveInputs(summaryRowsPath, summaryLookupPath, summaryPropsPath)
	if err != nil {
		return err
	}

	derived := stringer.Derive(rows, props, lookup)
	summaries := zone.Summarize(derived)
	log.Info("zone summary computed", zap.Int("rows", len(derived)), zap.Int("zones", len(summaries)))

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ZONE STRINGER WEIGHT SUMMARY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if len(summaries) == 0 {
		fmt.Println("  (no stringer records)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Zone Name\tTotal Stringer Weight (kg)\tTotal Duck Feet (kg)")
	for _, s := range summaries {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", s.ZoneName, format.Value(s.TotalWeightKg), format.Value(s.TotalDuckFeetKg))
	}
	w.Flush()
	fmt.Println()

	if summaryChart {
		fmt.Println(diagram.DrawASCIIZoneChart(summaries))
	}

	if summaryExport != "" {
		if err := diagram.ExportZoneChart(summaries, summaryExport); err != nil {
			return fmt.Errorf("export zone chart: %w", err)
		}
		fmt.Printf("Zone chart exported to %s\n", summaryExport)
	}
	return nil
}
