package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"damafashion/cli/internal/httperrors"
	"damafashion/cli/internal/inventory"
)

var (
	userUsername string
	userPassword string
	userRole     string
	userYes      bool
)

// usersCmd is the admin-only account screen. Every subcommand requires an
// ADMIN session; non-admins are sent back to the dashboard.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage accounts (admin only)",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one account",
	Args:  cobra.ExactArgs(1),
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an account",
	Args:  cobra.ExactArgs(1),
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
}

var usersRoleCmd = &cobra.Command{
	Use:   "role <id> <USER|ADMIN>",
	Short: "Change an account's role",
	Args:  cobra.ExactArgs(2),
}

func init() {
	usersListCmd.RunE = adminOnly(func(cmd *cobra.Command, args []string) error {
		users, err := a.users.GetAll(cmd.Context())
		if err != nil {
			return httperrors.Format(err, "loading accounts")
		}
		return renderShell("Accounts", func() error {
			rows := pterm.TableData{{"ID", "Username", "Role"}}
			for _, u := range users {
				rows = append(rows, []string{fmt.Sprint(u.ID), u.Username, string(u.Role)})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		})
	})

	usersGetCmd.RunE = adminOnly(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		u, err := a.users.GetByID(cmd.Context(), id)
		if err != nil {
			return httperrors.Format(err, "loading the account")
		}
		return renderShell("Account", func() error {
			pterm.Printf("#%d %s (%s)\n", u.ID, u.Username, u.Role)
			return nil
		})
	})

	usersCreateCmd.RunE = adminOnly(func(cmd *cobra.Command, args []string) error {
		u := inventory.User{
			Username: userUsername,
			Password: userPassword,
			Role:     inventory.Role(strings.ToUpper(userRole)),
		}
		created, err := a.users.Create(cmd.Context(), u)
		if err != nil {
			return httperrors.Format(err, "creating the account")
		}
		pterm.Success.Printf("Created account #%d %s (%s)\n", created.ID, created.Username, created.Role)
		return nil
	})

	usersUpdateCmd.RunE = adminOnly(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		u := inventory.User{
			Username: userUsername,
			Password: userPassword,
			Role:     inventory.Role(strings.ToUpper(userRole)),
		}
		updated, err := a.users.Update(cmd.Context(), id, u)
		if err != nil {
			return httperrors.Format(err, "updating the account")
		}
		pterm.Success.Printf("Updated account #%d %s\n", updated.ID, updated.Username)
		return nil
	})

	usersDeleteCmd.RunE = adminOnly(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Delete account %d?", id), userYes) {
			return nil
		}
		if err := a.users.Delete(cmd.Context(), id); err != nil {
			return httperrors.Format(err, "deleting the account")
		}
		pterm.Success.Printf("Deleted account #%d\n", id)
		return nil
	})

	usersRoleCmd.RunE = adminOnly(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		role := inventory.Role(strings.ToUpper(args[1]))
		updated, err := a.users.ChangeRole(cmd.Context(), id, role)
		if err != nil {
			return httperrors.Format(err, "changing the account role")
		}
		pterm.Success.Printf("Account #%d %s is now %s\n", updated.ID, updated.Username, updated.Role)
		return nil
	})

	for _, c := range []*cobra.Command{usersCreateCmd, usersUpdateCmd} {
		c.Flags().StringVar(&userUsername, "username", "", "Account username")
		c.Flags().StringVar(&userPassword, "password", "", "Account password")
		c.Flags().StringVar(&userRole, "role", "USER", "Account role (USER or ADMIN)")
	}
	usersDeleteCmd.Flags().BoolVarP(&userYes, "yes", "y", false, "Skip confirmation")

	usersCmd.AddCommand(usersListCmd, usersGetCmd, usersCreateCmd, usersUpdateCmd, usersDeleteCmd, usersRoleCmd)
	rootCmd.AddCommand(usersCmd)
}
