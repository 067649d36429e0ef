package cli

import (
	"fmt"
	"io"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage products",
}

var productsAddCmd = &cobra.Command{
	Use:   "add <name> <price>",
	Short: "Add a new product",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		product, err := services.ProductService.Add(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Product '%s' added at %s (id %d)\n", product.Name, product.Price.StringFixed(2), product.ID)
		return nil
	},
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		products, err := services.ProductService.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		return render(cmd.OutOrStdout(), products, func(w io.Writer) error {
			headers, rows := fieldRows(products, func(p *domain.Product) int64 { return p.ID })
			return writeTable(w, headers, rows)
		})
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsAddCmd)
	productsCmd.AddCommand(productsListCmd)
}
