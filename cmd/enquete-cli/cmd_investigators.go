package main

import (
	"fmt"
	"text/tabwriter"

	"enquete-portal-backend/pkg/client"

	"github.com/spf13/cobra"
)

var investigatorsCmd = &cobra.Command{
	Use:     "investigators",
	Aliases: []string{"enqueteurs"},
	Short:   "Manage the investigator roster",
}

var investigatorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the roster",
	RunE:  runInvestigatorsList,
}

var investigatorsAddFlags struct {
	lastName  string
	firstName string
	email     string
	phone     string
}

var investigatorsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an investigator and issue their VPN profile",
	RunE:  runInvestigatorsAdd,
}

var investigatorsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an investigator; their cases go back to the pool",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvestigatorsDelete,
}

func init() {
	f := investigatorsAddCmd.Flags()
	f.StringVar(&investigatorsAddFlags.lastName, "nom", "", "last name (required)")
	f.StringVar(&investigatorsAddFlags.firstName, "prenom", "", "first name (required)")
	f.StringVar(&investigatorsAddFlags.email, "email", "", "email (required)")
	f.StringVar(&investigatorsAddFlags.phone, "telephone", "", "phone number")
	_ = investigatorsAddCmd.MarkFlagRequired("nom")
	_ = investigatorsAddCmd.MarkFlagRequired("prenom")
	_ = investigatorsAddCmd.MarkFlagRequired("email")

	investigatorsCmd.AddCommand(investigatorsListCmd)
	investigatorsCmd.AddCommand(investigatorsAddCmd)
	investigatorsCmd.AddCommand(investigatorsDeleteCmd)
}

func runInvestigatorsList(cmd *cobra.Command, _ []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	roster, err := api.ListInvestigators(cmd.Context())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tVPN")
	for _, inv := range roster {
		vpn := "no"
		if inv.VPNConfigGenerated {
			vpn = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", inv.ID, inv.FullName(), inv.Email, inv.Phone, vpn)
	}
	return tw.Flush()
}

func runInvestigatorsAdd(cmd *cobra.Command, _ []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	inv, err := api.AddInvestigator(cmd.Context(), client.NewInvestigator{
		LastName:  investigatorsAddFlags.lastName,
		FirstName: investigatorsAddFlags.firstName,
		Email:     investigatorsAddFlags.email,
		Phone:     investigatorsAddFlags.phone,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (id %d)\n", inv.FullName(), inv.ID)
	if !inv.VPNConfigGenerated {
		fmt.Fprintln(cmd.OutOrStdout(), "VPN profile not generated yet; upload a template with 'enquete-cli vpn upload-template'")
	}
	return nil
}

func runInvestigatorsDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	api, err := newClient()
	if err != nil {
		return err
	}

	if err := api.DeleteInvestigator(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Investigator %d removed\n", id)
	return nil
}
