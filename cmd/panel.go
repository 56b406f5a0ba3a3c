package cmd

import (
	"github.com/spf13/cobra"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Panel annotation",
	Long:  `Commands for merging stringer totals onto the panel list.`,
}

func init() {
	rootCmd.AddCommand(panelCmd)
}
