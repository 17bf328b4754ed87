// Package cmd provides the command-line interface for the DamaFashion
// inventory admin client. Each subcommand is one screen of the admin panel:
// login/logout/whoami manage the session, dashboard shows the stock
// overview, and the resource commands are the CRUD tables. Guarded commands
// wait for the session restore that starts in the root pre-run before
// making any access decision.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showVersion bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "dama",
	Short:         "DamaFashion inventory management CLI",
	Long:          `dama is the terminal admin client for the DamaFashion inventory system: products, categories, suppliers, stock levels, and user administration over the inventory REST API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return initApp(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("dama %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
