package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "grid",
	Short:         "Reconciled European grid data from the ENTSO-E transparency platform",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json); environment only when empty")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
