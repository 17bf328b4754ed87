package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"damafashion/cli/internal/httperrors"
	"damafashion/cli/internal/inventory"
)

// dashboardCmd is the stock overview screen: headline counts and the
// products running low.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the inventory overview",
	Long: `The dashboard command shows the headline inventory numbers: product and
category counts, total units on hand, and every product whose stock has
fallen below the low-stock threshold, lowest first.`,
}

func init() {
	dashboardCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		s, err := a.dashboard.Summary(cmd.Context())
		if err != nil {
			return httperrors.Format(err, "loading the dashboard")
		}
		return renderShell("Dashboard", func() error {
			pterm.Printf("Products: %d    Categories: %d    Units on hand: %d\n",
				s.ProductCount, s.CategoryCount, s.TotalUnits)
			if s.LowStockCount == 0 {
				pterm.Success.Println("No products below the low-stock threshold")
				return nil
			}
			pterm.Warning.Printf("%d product(s) below %d units:\n",
				s.LowStockCount, inventory.LowStockThreshold)
			rows := pterm.TableData{{"ID", "Product", "Quantity"}}
			for _, p := range s.LowStock {
				rows = append(rows, []string{
					fmt.Sprint(p.ID), p.Name, fmt.Sprint(p.Stock.Quantity),
				})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		})
	})
	rootCmd.AddCommand(dashboardCmd)
}

// guarded defers guard construction until the app graph exists: guards are
// created per run, not at init time.
func guarded(next func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return a.guard.Require(next)(cmd, args)
	}
}

// adminOnly is the admin-gated variant of guarded.
func adminOnly(next func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return a.guard.RequireAdmin(next)(cmd, args)
	}
}
