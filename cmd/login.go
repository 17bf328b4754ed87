package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"damafashion/cli/internal/api"
	"damafashion/cli/internal/httperrors"
)

var (
	loginUsername string
	loginPassword string
)

// loginCmd authenticates against the inventory API and stores the returned
// bearer token in the OS keychain. If already logged in with a valid token,
// it short-circuits.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Authenticate against the inventory API",
	Long: `The login command exchanges a username and password for a bearer token via
the inventory API. The token is stored in the OS keychain and attached to
every subsequent request until logout or expiry.

Credentials can be passed with --username/--password; missing values are
prompted for interactively (the password prompt is masked).`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Wait for the startup restore so an existing session is detected.
		select {
		case <-a.sessions.Ready():
		case <-ctx.Done():
			return ctx.Err()
		}
		if u, ok := a.sessions.CurrentUser(); ok {
			pterm.Info.Printf("Already logged in as %s\n", u.Username)
			return nil
		}

		username := loginUsername
		if username == "" {
			var err error
			username, err = pterm.DefaultInteractiveTextInput.Show("Username")
			if err != nil {
				return err
			}
		}
		password := loginPassword
		if password == "" {
			var err error
			password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return err
			}
		}

		spinner, _ := pterm.DefaultSpinner.Start("Signing in...")
		err := a.sessions.Login(ctx, username, password)
		if spinner != nil {
			_ = spinner.Stop()
		}
		if err != nil {
			var apiErr *api.Error
			if errors.As(err, &apiErr) && apiErr.Status == 401 {
				pterm.Error.Println("Invalid username or password")
				return err
			}
			return httperrors.Format(err, "signing in")
		}

		u, _ := a.sessions.CurrentUser()
		pterm.Success.Printf("Welcome back, %s!\n", u.Username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted when omitted)")
}
