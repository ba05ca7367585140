package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var vpnCmd = &cobra.Command{
	Use:   "vpn",
	Short: "Manage OpenVPN profile delivery",
}

var vpnUploadTemplateCmd = &cobra.Command{
	Use:   "upload-template <file.ovpn>",
	Short: "Upload the client template future profiles are generated from",
	Args:  cobra.ExactArgs(1),
	RunE:  runVPNUploadTemplate,
}

var vpnConfigCmd = &cobra.Command{
	Use:   "config <investigator-id>",
	Short: "Generate (if needed) and report an investigator's profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runVPNConfig,
}

func init() {
	vpnCmd.AddCommand(vpnUploadTemplateCmd)
	vpnCmd.AddCommand(vpnConfigCmd)
}

func runVPNUploadTemplate(cmd *cobra.Command, args []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if err := api.UploadVPNTemplate(cmd.Context(), filepath.Base(args[0]), f); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "VPN template uploaded")
	return nil
}

func runVPNConfig(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	api, err := newClient()
	if err != nil {
		return err
	}

	config, err := api.FetchVPNConfig(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profile for investigator %d: %s\n", id, config.ConfigPath)
	return nil
}
