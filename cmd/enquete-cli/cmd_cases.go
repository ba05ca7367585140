package main

import (
	"fmt"
	"text/tabwriter"

	"enquete-portal-backend/pkg/workbench"

	"github.com/spf13/cobra"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List and assign investigation cases",
}

var casesListFlags struct {
	filter     string
	unassigned bool
}

var casesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cases, optionally filtered by name or case number",
	RunE:  runCasesList,
}

var casesAssignFlags struct {
	investigatorID uint
	release        bool
}

var casesAssignCmd = &cobra.Command{
	Use:   "assign <case-number>",
	Short: "Route one case to an investigator, or release it",
	Args:  cobra.ExactArgs(1),
	RunE:  runCasesAssign,
}

var casesBulkFlags struct {
	from           int
	to             int
	investigatorID uint
	filter         string
}

var casesBulkAssignCmd = &cobra.Command{
	Use:   "bulk-assign",
	Short: "Assign a row range of the filtered view to one investigator",
	Long: "Rows are counted 1-based over the filtered view, the same order\n" +
		"'cases list' prints. Writes are applied one at a time; on failure the\n" +
		"assignments already applied stay applied.",
	RunE: runCasesBulkAssign,
}

func init() {
	casesListCmd.Flags().StringVar(&casesListFlags.filter, "filter", "", "search term (name or case number)")
	casesListCmd.Flags().BoolVar(&casesListFlags.unassigned, "unassigned", false, "only show unassigned cases")

	casesAssignCmd.Flags().UintVar(&casesAssignFlags.investigatorID, "investigator", 0, "investigator ID")
	casesAssignCmd.Flags().BoolVar(&casesAssignFlags.release, "release", false, "release the case back to the pool")

	casesBulkAssignCmd.Flags().IntVar(&casesBulkFlags.from, "from", 0, "first row of the range (1-based, required)")
	casesBulkAssignCmd.Flags().IntVar(&casesBulkFlags.to, "to", 0, "last row of the range (inclusive, required)")
	casesBulkAssignCmd.Flags().UintVar(&casesBulkFlags.investigatorID, "investigator", 0, "investigator ID (required)")
	casesBulkAssignCmd.Flags().StringVar(&casesBulkFlags.filter, "filter", "", "search term the range is counted over")
	_ = casesBulkAssignCmd.MarkFlagRequired("from")
	_ = casesBulkAssignCmd.MarkFlagRequired("to")
	_ = casesBulkAssignCmd.MarkFlagRequired("investigator")

	casesCmd.AddCommand(casesListCmd)
	casesCmd.AddCommand(casesAssignCmd)
	casesCmd.AddCommand(casesBulkAssignCmd)
}

func runCasesList(cmd *cobra.Command, _ []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	wb := workbench.New(api)
	if err := wb.Load(cmd.Context()); err != nil {
		return err
	}
	wb.SetFilter(casesListFlags.filter)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tCASE\tNAME\tCITY\tASSIGNED TO")
	row := 0
	for _, rec := range wb.Filtered() {
		row++
		if casesListFlags.unassigned && rec.InvestigatorID != nil {
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s %s\t%s\t%s\n",
			row, rec.CaseNumber, rec.LastName, rec.FirstName, rec.City, wb.InvestigatorName(rec.InvestigatorID))
	}
	return tw.Flush()
}

func runCasesAssign(cmd *cobra.Command, args []string) error {
	if casesAssignFlags.release == (casesAssignFlags.investigatorID != 0) {
		return fmt.Errorf("pass exactly one of --investigator or --release")
	}

	api, err := newClient()
	if err != nil {
		return err
	}

	wb := workbench.New(api)
	if err := wb.Load(cmd.Context()); err != nil {
		return err
	}

	var id *uint
	if !casesAssignFlags.release {
		id = &casesAssignFlags.investigatorID
	}
	if err := wb.Assign(cmd.Context(), args[0], id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Case %s: %s\n", args[0], wb.InvestigatorName(id))
	return nil
}

func runCasesBulkAssign(cmd *cobra.Command, _ []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	wb := workbench.New(api)
	if err := wb.Load(cmd.Context()); err != nil {
		return err
	}
	wb.SetFilter(casesBulkFlags.filter)

	result, err := wb.BulkAssign(cmd.Context(), casesBulkFlags.from, casesBulkFlags.to, &casesBulkFlags.investigatorID)
	if err != nil {
		// Partial success still happened; tell the operator how far it got.
		fmt.Fprintf(cmd.OutOrStdout(), "Applied %d of %d assignments before failing\n", result.Applied, result.Requested)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Assigned %d cases to %s\n", result.Applied, wb.InvestigatorName(&casesBulkFlags.investigatorID))
	return nil
}
