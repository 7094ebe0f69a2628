package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/landecol/landstats/dataset"
)

func runDatasets(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCELL SIZE\tCLASSES")
	for _, ds := range dataset.List(dataset.Category(category)) {
		fmt.Fprintf(tw, "%s\t%s\t%.0f m\t%d\n", ds.ID, ds.Name, ds.CellSize, len(ds.Classes))
	}
	return tw.Flush()
}
