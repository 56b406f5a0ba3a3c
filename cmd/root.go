package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fubueng/gostringer/internal/config"
	"github.com/fubueng/gostringer/internal/logging"
	"github.com/fubueng/gostringer/internal/version"
)

var (
	cfgPath string

	cfg config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gostringer",
	Short: "Stringer Weight Estimation Tool",
	Long: `gostringer - Stringer Weight Estimator

A CLI tool for computing derived weights of assembly stringers and
rolling them up into zone and panel level summaries.

This tool helps weight engineers perform:
  - Per-stringer cross-section lookup and mass derivation
  - Duck feet reinforcement mass calculation
  - Zone level weight aggregation
  - Panel annotation with stringer and duck feet totals
  - Global property management with full recomputation`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		log, err = logging.New(cfg.Logging)
		if err != nil {
			log = logging.NewDefault()
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gostringer v%-44s║\n", version.Version)
		fmt.Println("  ║   Stringer Weight Estimator                               ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing stringer weights and aggregating")
		fmt.Println("  them per zone and per panel of an assembly.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Cross-section lookup by stringer type and frame position")
		fmt.Println("    • Duck feet reinforcement mass calculation")
		fmt.Println("    • Zone stringer weight summaries with charts")
		fmt.Println("    • Panel annotation for cross-tab consumption")
		fmt.Println()
		fmt.Println("  Use 'gostringer --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file (default gostringer.yaml if present)")
}
