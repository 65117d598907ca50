package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/willfleury/electricitymap/connectors/entsoe"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List supported country codes and their bidding zones",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, c := range entsoe.Countries() {
			d, err := entsoe.Domain(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%s\n", c, d)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(countriesCmd)
}
