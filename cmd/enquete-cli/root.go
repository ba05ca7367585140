package main

import (
	"fmt"
	"os"

	"enquete-portal-backend/pkg/client"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	apiBaseURL string
}

var rootCmd = &cobra.Command{
	Use:   "enquete-cli",
	Short: "Operator tooling for the enquête portal",
	Long: "enquete-cli drives the enquête portal backend from the terminal:\n" +
		"list and assign cases, manage the investigator roster, submit findings,\n" +
		"import EOS exchange files and deliver VPN profiles.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.apiBaseURL, "api", "", "backend base URL (defaults to API_BASE_URL)")

	rootCmd.AddCommand(casesCmd)
	rootCmd.AddCommand(investigatorsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(vpnCmd)
	rootCmd.Version = version
}

// newClient builds the API client from the --api flag, falling back to the
// API_BASE_URL environment variable.
func newClient() (*client.Client, error) {
	base := rootFlags.apiBaseURL
	if base == "" {
		base = os.Getenv("API_BASE_URL")
	}
	if base == "" {
		base = "http://localhost:5000"
	}
	return client.New(base)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
