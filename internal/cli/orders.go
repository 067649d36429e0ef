package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/repository"
	"github.com/spf13/cobra"
)

var (
	orderQuantity int
	orderDate     string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Place and list orders",
}

var ordersAddCmd = &cobra.Command{
	Use:   "add <client-name> <product-name>",
	Short: "Place an order by client and product name",
	Long: `Place an order by client and product name.

When several clients or products share a name the first one added is used.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		placedAt, err := parseOrderDateFlag(orderDate)
		if err != nil {
			return err
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		order, err := services.OrderService.Place(cmd.Context(), args[0], args[1], orderQuantity, placedAt)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Order %d placed: %s x%d for %s\n", order.ID, args[1], order.Quantity, args[0])
		return nil
	},
}

var ordersAddIDsCmd = &cobra.Command{
	Use:   "add-ids <client-id> <product-id>",
	Short: "Place an order by raw ids",
	Long: `Place an order by raw client and product ids.

The ids are stored as given and are not checked against existing rows.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, err := parseID("client id", args[0])
		if err != nil {
			return err
		}
		productID, err := parseID("product id", args[1])
		if err != nil {
			return err
		}
		placedAt, err := parseOrderDateFlag(orderDate)
		if err != nil {
			return err
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		order, err := services.OrderService.PlaceByID(cmd.Context(), clientID, productID, orderQuantity, placedAt)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Order %d placed\n", order.ID)
		return nil
	},
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	Long: `List orders with client and product names.

Orders whose client or product was deleted show an empty name.
Fields: ` + strings.Join(repository.OrderQueryFields, ", "),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := parseListFlags()
		if err != nil {
			return err
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		orders, total, err := services.OrderService.List(cmd.Context(), repository.OrderFilter{ListFilter: filter})
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), orders, func(w io.Writer) error {
			var rows [][]string
			for _, o := range orders {
				rows = append(rows, []string{
					strconv.FormatInt(o.ID, 10),
					o.OrderDate.Format(domain.OrderDateLayout),
					o.ClientName,
					o.ProductName,
					strconv.Itoa(o.Quantity),
				})
			}
			headers := []string{"ID", "Дата", domain.LabelOrderClient, domain.LabelOrderProduct, domain.LabelOrderQuantity}
			if err := writeTable(w, headers, rows); err != nil {
				return err
			}
			if filter.PerPage > 0 {
				fmt.Fprintf(w, "Page %d, %d of %d order(s)\n", max(filter.Page, 1), len(orders), total)
			}
			return nil
		})
	},
}

func parseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: field, Value: raw, Reason: "must be an integer"}
	}
	return id, nil
}

// parseOrderDateFlag accepts YYYY-MM-DD or YYYY-MM-DD HH:MM:SS in UTC. Empty
// means now.
func parseOrderDateFlag(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{domain.OrderDateLayout, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &domain.ValidationError{Field: "date", Value: raw, Reason: "expected YYYY-MM-DD or YYYY-MM-DD HH:MM:SS"}
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersAddCmd)
	ordersCmd.AddCommand(ordersAddIDsCmd)
	ordersCmd.AddCommand(ordersListCmd)

	for _, c := range []*cobra.Command{ordersAddCmd, ordersAddIDsCmd} {
		c.Flags().IntVar(&orderQuantity, "quantity", 1, "number of units")
		c.Flags().StringVar(&orderDate, "date", "", "order date, YYYY-MM-DD (default now)")
	}
	addListFlags(ordersListCmd)
}
