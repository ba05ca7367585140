package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"enquete-portal-backend/pkg/client"

	"github.com/spf13/cobra"
)

var importFlags struct {
	replace bool
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an EOS exchange file",
	Long: "Parses a fixed-width EOS exchange file and stores its cases.\n" +
		"A file already imported under the same name is rejected unless\n" +
		"--replace is given, which drops the previous import first.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importFlags.replace, "replace", false, "replace a previous import with the same name")
}

func runImport(cmd *cobra.Command, args []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	name := filepath.Base(args[0])

	var result *client.ImportResult
	if importFlags.replace {
		result, err = api.ReplaceFile(cmd.Context(), name, f)
	} else {
		result, err = api.ImportFile(cmd.Context(), name, f)
	}
	if err != nil {
		var backendErr *client.BackendError
		if errors.As(err, &backendErr) && backendErr.IsConflict() {
			return fmt.Errorf("%s is already imported; rerun with --replace to overwrite it", name)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records imported (file id %d)\n", name, result.RecordsProcessed, result.FileID)
	return nil
}
