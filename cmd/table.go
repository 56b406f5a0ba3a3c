package cmd

import (
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Stringer table operations",
	Long:  `Commands for deriving and exporting the stringer data table.`,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
