package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd clears the stored bearer token and the in-memory session.
// It is purely local and cannot fail: the token simply stops being sent.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved session token",
	Long: `The logout command clears the bearer token from the OS keychain and drops
the in-memory session. Subsequent commands run unauthenticated until the
next login.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a.sessions.Logout()
		pterm.Success.Println("Logged out; the saved token has been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
