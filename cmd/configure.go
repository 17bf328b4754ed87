package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"damafashion/cli/internal/config"
)

var (
	configAPIURL   string
	configLogLevel string
)

// configCmd manages local, non-secret CLI settings. The bearer token never
// lives here; it stays in the OS keychain.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.Printf("API URL:   %s\n", a.cfg.BaseURL)
		pterm.Printf("Log level: %s\n", a.cfg.LogLevel)
		pterm.Printf("Timeout:   %s\n", a.cfg.Timeout)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Persist settings to the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := a.cfg
		if cmd.Flags().Changed("api-url") {
			c.BaseURL = configAPIURL
		}
		if cmd.Flags().Changed("log-level") {
			c.LogLevel = configLogLevel
		}
		if err := config.Save(c); err != nil {
			return err
		}
		pterm.Success.Println("Settings saved")
		return nil
	},
}

func init() {
	configSetCmd.Flags().StringVar(&configAPIURL, "api-url", "", "Inventory API base URL (including /api)")
	configSetCmd.Flags().StringVar(&configLogLevel, "log-level", "", "Log verbosity (trace, debug, info, warn, error)")

	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
