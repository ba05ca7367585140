package main

import (
	"fmt"

	"enquete-portal-backend/pkg/client"
	"enquete-portal-backend/pkg/workbench"

	"github.com/spf13/cobra"
)

var casesFindingsFlags struct {
	resultCode string
	returnDate string
	address    string
	postalCode string
	city       string
	phone      string
	employer   string
	memo       string
}

var casesFindingsCmd = &cobra.Command{
	Use:   "findings <case-number>",
	Short: "Submit findings for a case",
	Long: "Opens the findings form for one case, pre-filled with whatever was\n" +
		"last saved, applies the given fields and submits. Fields not passed\n" +
		"keep their stored value.",
	Args: cobra.ExactArgs(1),
	RunE: runFindings,
}

func init() {
	f := casesFindingsCmd.Flags()
	f.StringVar(&casesFindingsFlags.resultCode, "result", "", "result code: P, N, H, Z, I or Y (required)")
	f.StringVar(&casesFindingsFlags.returnDate, "return-date", "", "return date (YYYY-MM-DD, defaults to today)")
	f.StringVar(&casesFindingsFlags.address, "adresse", "", "address line 1")
	f.StringVar(&casesFindingsFlags.postalCode, "code-postal", "", "postal code")
	f.StringVar(&casesFindingsFlags.city, "ville", "", "city")
	f.StringVar(&casesFindingsFlags.phone, "telephone", "", "personal phone")
	f.StringVar(&casesFindingsFlags.employer, "employeur", "", "employer name")
	f.StringVar(&casesFindingsFlags.memo, "memo", "", "free-form memo")
	_ = casesFindingsCmd.MarkFlagRequired("result")

	casesCmd.AddCommand(casesFindingsCmd)
}

func runFindings(cmd *cobra.Command, args []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	wb := workbench.New(api)
	if err := wb.Load(cmd.Context()); err != nil {
		return err
	}

	caseNumber := args[0]
	var rec *client.Record
	for i, r := range wb.Records() {
		if r.CaseNumber == caseNumber {
			rec = &wb.Records()[i]
			break
		}
	}
	if rec == nil {
		return fmt.Errorf("case %s is not in the working set", caseNumber)
	}

	form := workbench.NewFindingsForm(api)
	form.Open(*rec)

	form.Fields.ResultCode = casesFindingsFlags.resultCode
	setIfGiven(&form.Fields.ReturnDate, casesFindingsFlags.returnDate)
	setIfGiven(&form.Fields.AddressLine1, casesFindingsFlags.address)
	setIfGiven(&form.Fields.PostalCode, casesFindingsFlags.postalCode)
	setIfGiven(&form.Fields.City, casesFindingsFlags.city)
	setIfGiven(&form.Fields.PersonalPhone, casesFindingsFlags.phone)
	setIfGiven(&form.Fields.EmployerName, casesFindingsFlags.employer)
	setIfGiven(&form.Fields.Memo1, casesFindingsFlags.memo)

	if err := form.Submit(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Findings saved for case %s\n", caseNumber)
	return nil
}

func setIfGiven(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
