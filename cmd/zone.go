package cmd

import (
	"github.com/spf13/cobra"
)

var zoneCmd = &cobra.Command{
	Use:   "zone",
	Short: "Zone level aggregation",
	Long:  `Commands for summarizing stringer weights per zone.`,
}

func init() {
	rootCmd.AddCommand(zoneCmd)
}
