package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show import statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, _ []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	stats, err := api.GetStats(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Files:   %d\n", stats.TotalFiles)
	fmt.Fprintf(out, "Records: %d\n", stats.TotalCases)

	if len(stats.RecentFiles) == 0 {
		return nil
	}
	fmt.Fprintln(out, "Recent imports:")
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tUPLOADED\tRECORDS")
	for _, f := range stats.RecentFiles {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", f.ID, f.Name, f.UploadedAt, f.RecordCount)
	}
	return tw.Flush()
}
