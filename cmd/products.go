package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"damafashion/cli/internal/httperrors"
	"damafashion/cli/internal/inventory"
)

var (
	productName        string
	productPrice       float64
	productDescription string
	productCategoryID  int
	productSupplierID  int
	productYes         bool
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage products",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
}

func productRow(p inventory.Product) []string {
	stock := "-"
	if p.Stock != nil {
		stock = fmt.Sprint(p.Stock.Quantity)
		if p.Stock.Quantity < inventory.LowStockThreshold {
			stock += " ⚠"
		}
	}
	return []string{fmt.Sprint(p.ID), p.Name, price(p.Price), fmt.Sprint(p.CategoryID), fmt.Sprint(p.SupplierID), stock}
}

func init() {
	productsListCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		products, err := a.products.GetAll(cmd.Context())
		if err != nil {
			return httperrors.Format(err, "loading products")
		}
		return renderShell("Products", func() error {
			rows := pterm.TableData{{"ID", "Name", "Price", "Category", "Supplier", "Stock"}}
			for _, p := range products {
				rows = append(rows, productRow(p))
			}
			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		})
	})

	productsGetCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := a.products.GetByID(cmd.Context(), id)
		if err != nil {
			return httperrors.Format(err, "loading the product")
		}
		return renderShell("Product", func() error {
			pterm.Printf("#%d %s\n", p.ID, p.Name)
			pterm.Printf("Price: %s    Category: %d    Supplier: %d\n", price(p.Price), p.CategoryID, p.SupplierID)
			if p.Description != "" {
				pterm.Printf("%s\n", p.Description)
			}
			if p.Stock != nil {
				pterm.Printf("On hand: %d\n", p.Stock.Quantity)
			}
			return nil
		})
	})

	productsCreateCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		p := inventory.Product{
			Name:        productName,
			Price:       productPrice,
			Description: productDescription,
			CategoryID:  productCategoryID,
			SupplierID:  productSupplierID,
		}
		created, err := a.products.Create(cmd.Context(), p)
		if err != nil {
			return httperrors.Format(err, "creating the product")
		}
		pterm.Success.Printf("Created product #%d %s\n", created.ID, created.Name)
		return nil
	})

	productsUpdateCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p := inventory.Product{
			Name:        productName,
			Price:       productPrice,
			Description: productDescription,
			CategoryID:  productCategoryID,
			SupplierID:  productSupplierID,
		}
		updated, err := a.products.Update(cmd.Context(), id, p)
		if err != nil {
			return httperrors.Format(err, "updating the product")
		}
		pterm.Success.Printf("Updated product #%d %s\n", updated.ID, updated.Name)
		return nil
	})

	productsDeleteCmd.RunE = guarded(func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Delete product %d?", id), productYes) {
			return nil
		}
		if err := a.products.Delete(cmd.Context(), id); err != nil {
			return httperrors.Format(err, "deleting the product")
		}
		pterm.Success.Printf("Deleted product #%d\n", id)
		return nil
	})

	for _, c := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productName, "name", "", "Product name")
		c.Flags().Float64Var(&productPrice, "price", 0, "Unit price")
		c.Flags().StringVar(&productDescription, "description", "", "Product description")
		c.Flags().IntVar(&productCategoryID, "category", 0, "Category id")
		c.Flags().IntVar(&productSupplierID, "supplier", 0, "Supplier id")
	}
	productsDeleteCmd.Flags().BoolVarP(&productYes, "yes", "y", false, "Skip confirmation")

	productsCmd.AddCommand(productsListCmd, productsGetCmd, productsCreateCmd, productsUpdateCmd, productsDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}
