package cmd

import (
	"github.com/spf13/cobra"
)

var propsCmd = &cobra.Command{
	Use:   "props",
	Short: "Global property management",
	Long:  `Commands for viewing and saving the global stringer properties.`,
}

func init() {
	rootCmd.AddCommand(propsCmd)
}
