package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"damafashion/cli/internal/httperrors"
	"damafashion/cli/internal/inventory"
)

var (
	supplierName    string
	supplierContact string
	supplierYes     bool
)

var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "Manage suppliers",
}

var suppliersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all suppliers",
}

var suppliersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one supplier",
	Args:  cobra.ExactArgs(1),
}

var suppliersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a supplier",
}

var suppliersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a supplier",
	Args:  cobra.ExactArgs(1),
}

var suppliersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a supplier",
	Args:  cobra.ExactArgs(1),
}

func init() {
	suppliersListCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		suppliers, err := a.suppliers.GetAll(cmd.Context())
		if err != nil {
			return httperrors.Format(err, "loading suppliers")
		}
		return renderShell("Suppliers", func() error {
			rows := pterm.TableData{{"ID", "Name", "Contact"}}
			for _, s := range suppliers {
				rows = append(rows, []string{fmt.Sprint(s.ID), s.Name, s.Contact})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		})
	})

	suppliersGetCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		s, err := a.suppliers.GetByID(cmd.Context(), id)
		if err != nil {
			return httperrors.Format(err, "loading the supplier")
		}
		return renderShell("Supplier", func() error {
			pterm.Printf("#%d %s\nContact: %s\n", s.ID, s.Name, s.Contact)
			return nil
		})
	})

	suppliersCreateCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		created, err := a.suppliers.Create(cmd.Context(), inventory.Supplier{Name: supplierName, Contact: supplierContact})
		if err != nil {
			return httperrors.Format(err, "creating the supplier")
		}
		pterm.Success.Printf("Created supplier #%d %s\n", created.ID, created.Name)
		return nil
	})

	suppliersUpdateCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		updated, err := a.suppliers.Update(cmd.Context(), id, inventory.Supplier{Name: supplierName, Contact: supplierContact})
		if err != nil {
			return httperrors.Format(err, "updating the supplier")
		}
		pterm.Success.Printf("Updated supplier #%d %s\n", updated.ID, updated.Name)
		return nil
	})

	suppliersDeleteCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Delete supplier %d?", id), supplierYes) {
			return nil
		}
		if err := a.suppliers.Delete(cmd.Context(), id); err != nil {
			return httperrors.Format(err, "deleting the supplier")
		}
		pterm.Success.Printf("Deleted supplier #%d\n", id)
		return nil
	})

	for _, c := range []*cobra.Command{suppliersCreateCmd, suppliersUpdateCmd} {
		c.Flags().StringVar(&supplierName, "name", "", "Supplier name")
		c.Flags().StringVar(&supplierContact, "contact", "", "Contact line (email or phone)")
	}
	suppliersDeleteCmd.Flags().BoolVarP(&supplierYes, "yes", "y", false, "Skip confirmation")

	suppliersCmd.AddCommand(suppliersListCmd, suppliersGetCmd, suppliersCreateCmd, suppliersUpdateCmd, suppliersDeleteCmd)
	rootCmd.AddCommand(suppliersCmd)
}
