package cmd

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"damafashion/cli/internal/token"
)

// whoamiCmd shows the current authenticated account, validated against the
// backend by the startup session restore.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command displays the account the current session belongs to,
including its role. When the stored token is a JWT its expiry is shown too.

If no valid session exists it will say so; run 'dama login' to start one.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		select {
		case <-a.sessions.Ready():
		case <-ctx.Done():
			return ctx.Err()
		}

		u, ok := a.sessions.CurrentUser()
		if !ok {
			pterm.Println("🔒 You're not logged in yet!")
			pterm.Println("   Run 'dama login' to get started.")
			return nil
		}

		pterm.Printf("👤 Current user: %s (%s)\n", u.Username, u.Role)
		if raw, ok := a.tokens.Get(); ok {
			if exp, ok := token.Expiry(raw); ok {
				if remaining := time.Until(exp); remaining > 0 {
					pterm.Printf("   Session expires %s\n", exp.Format(time.RFC1123))
				} else {
					pterm.Println("   Session token has expired; the next request will sign you out.")
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
