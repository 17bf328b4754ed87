package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"damafashion/cli/internal/httperrors"
	"damafashion/cli/internal/inventory"
)

var (
	stockQuantity  int
	stockProductID int
)

var stocksCmd = &cobra.Command{
	Use:   "stocks",
	Short: "Manage stock levels",
	Long: `Stock rows track the on-hand quantity per product. They are created
alongside products and adjusted with 'stocks set'; there is no delete.`,
}

var stocksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stock levels",
}

var stocksGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one stock row",
	Args:  cobra.ExactArgs(1),
}

var stocksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a stock row for a product",
}

var stocksSetCmd = &cobra.Command{
	Use:   "set <id> <quantity>",
	Short: "Set the quantity for a stock row",
	Args:  cobra.ExactArgs(2),
}

func init() {
	stocksListCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		stocks, err := a.stocks.GetAll(cmd.Context())
		if err != nil {
			return httperrors.Format(err, "loading stock levels")
		}
		return renderShell("Stock", func() error {
			rows := pterm.TableData{{"ID", "Product", "Quantity", ""}}
			for _, s := range stocks {
				warn := ""
				if s.Quantity < inventory.LowStockThreshold {
					warn = "low"
				}
				rows = append(rows, []string{fmt.Sprint(s.ID), fmt.Sprint(s.ProductID), fmt.Sprint(s.Quantity), warn})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		})
	})

	stocksGetCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		s, err := a.stocks.GetByID(cmd.Context(), id)
		if err != nil {
			return httperrors.Format(err, "loading the stock row")
		}
		return renderShell("Stock", func() error {
			pterm.Printf("#%d product %d: %d unit(s)\n", s.ID, s.ProductID, s.Quantity)
			return nil
		})
	})

	stocksCreateCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		created, err := a.stocks.Create(cmd.Context(), inventory.Stock{Quantity: stockQuantity, ProductID: stockProductID})
		if err != nil {
			return httperrors.Format(err, "creating the stock row")
		}
		pterm.Success.Printf("Created stock row #%d (product %d, %d units)\n", created.ID, created.ProductID, created.Quantity)
		return nil
	})

	stocksSetCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var quantity int
		if _, err := fmt.Sscanf(args[1], "%d", &quantity); err != nil {
			return fmt.Errorf("invalid quantity %q: expected an integer", args[1])
		}
		updated, err := a.stocks.UpdateQuantity(cmd.Context(), id, quantity)
		if err != nil {
			return httperrors.Format(err, "updating the stock quantity")
		}
		pterm.Success.Printf("Stock row #%d now at %d unit(s)\n", updated.ID, updated.Quantity)
		if updated.Quantity < inventory.LowStockThreshold {
			pterm.Warning.Println("Quantity is below the low-stock threshold")
		}
		return nil
	})

	stocksCreateCmd.Flags().IntVar(&stockQuantity, "quantity", 0, "Initial quantity")
	stocksCreateCmd.Flags().IntVar(&stockProductID, "product", 0, "Product id")

	stocksCmd.AddCommand(stocksListCmd, stocksGetCmd, stocksCreateCmd, stocksSetCmd)
	rootCmd.AddCommand(stocksCmd)
}
