package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"damafashion/cli/internal/httperrors"
	"damafashion/cli/internal/inventory"
)

var (
	categoryName string
	categoryYes  bool
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage product categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
}

var categoriesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one category",
	Args:  cobra.ExactArgs(1),
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category",
}

var categoriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(1),
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
}

func init() {
	categoriesListCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		categories, err := a.categories.GetAll(cmd.Context())
		if err != nil {
			return httperrors.Format(err, "loading categories")
		}
		return renderShell("Categories", func() error {
			rows := pterm.TableData{{"ID", "Name"}}
			for _, c := range categories {
				rows = append(rows, []string{fmt.Sprint(c.ID), c.Name})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		})
	})

	categoriesGetCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		c, err := a.categories.GetByID(cmd.Context(), id)
		if err != nil {
			return httperrors.Format(err, "loading the category")
		}
		return renderShell("Category", func() error {
			pterm.Printf("#%d %s\n", c.ID, c.Name)
			return nil
		})
	})

	categoriesCreateCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		created, err := a.categories.Create(cmd.Context(), inventory.Category{Name: categoryName})
		if err != nil {
			return httperrors.Format(err, "creating the category")
		}
		pterm.Success.Printf("Created category #%d %s\n", created.ID, created.Name)
		return nil
	})

	categoriesUpdateCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		updated, err := a.categories.Update(cmd.Context(), id, inventory.Category{Name: categoryName})
		if err != nil {
			return httperrors.Format(err, "updating the category")
		}
		pterm.Success.Printf("Updated category #%d %s\n", updated.ID, updated.Name)
		return nil
	})

	categoriesDeleteCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Delete category %d?", id), categoryYes) {
			return nil
		}
		if err := a.categories.Delete(cmd.Context(), id); err != nil {
			return httperrors.Format(err, "deleting the category")
		}
		pterm.Success.Printf("Deleted category #%d\n", id)
		return nil
	})

	for _, c := range []*cobra.Command{categoriesCreateCmd, categoriesUpdateCmd} {
		c.Flags().StringVar(&categoryName, "name", "", "Category name")
	}
	categoriesDeleteCmd.Flags().BoolVarP(&categoryYes, "yes", "y", false, "Skip confirmation")

	categoriesCmd.AddCommand(categoriesListCmd, categoriesGetCmd, categoriesCreateCmd, categoriesUpdateCmd, categoriesDeleteCmd)
	rootCmd.AddCommand(categoriesCmd)
}
