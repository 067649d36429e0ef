package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/IIPisarenko/ITOG/internal/core/analytics"
	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/spf13/cobra"
)

var (
	topLimit      int
	trendsFrom    string
	trendsTo      string
	networkFormat string
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Reports over clients and orders",
}

var topClientsCmd = &cobra.Command{
	Use:   "top-clients",
	Short: "Clients ranked by number of orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := topLimit
		if limit <= 0 {
			limit = cfg.TopClientsLimit
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		top, err := services.AnalyticsService.TopClients(cmd.Context(), limit)
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), top, func(w io.Writer) error {
			labels := make([]string, len(top))
			values := make([]int, len(top))
			for i, c := range top {
				labels[i], values[i] = c.Name, c.Orders
			}
			return writeBars(w, fmt.Sprintf("Top %d clients by orders", limit), labels, values)
		})
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Orders per day, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseDay("from", trendsFrom)
		if err != nil {
			return err
		}
		to, err := parseDay("to", trendsTo)
		if err != nil {
			return err
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		points, err := services.AnalyticsService.OrderTrends(cmd.Context(), from, to)
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), points, func(w io.Writer) error {
			labels := make([]string, len(points))
			values := make([]int, len(points))
			for i, p := range points {
				labels[i], values[i] = p.Label(), p.Orders
			}
			if err := writeBars(w, "Orders per day", labels, values); err != nil {
				return err
			}
			if len(points) > 0 {
				fmt.Fprintln(w, dimStyle.Render("Total: "+strconv.Itoa(analytics.TotalOrders(points))))
			}
			return nil
		})
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Clients linked by a common product",
	Long: `Clients linked by a common product.

Two clients are connected when both ordered at least one same product.
--format dot prints a Graphviz graph that can be rendered with
"dot -Tpng".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if networkFormat != "table" && networkFormat != "dot" {
			return &domain.ValidationError{Field: "format", Value: networkFormat, Reason: "must be table or dot"}
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		g, err := services.AnalyticsService.ClientNetwork(cmd.Context())
		if err != nil {
			return err
		}

		if networkFormat == "dot" {
			return g.WriteDOT(cmd.OutOrStdout())
		}

		return render(cmd.OutOrStdout(), g.Network(), func(w io.Writer) error {
			fmt.Fprintln(w, titleStyle.Render("Client network"))
			var rows [][]string
			for _, e := range g.Edges() {
				rows = append(rows, []string{e.A, e.B})
			}
			if err := writeTable(w, []string{"Клиент", "Клиент"}, rows); err != nil {
				return err
			}
			fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d client(s), %d link(s)", len(g.Nodes()), len(rows))))
			return nil
		})
	},
}

func parseDay(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(analytics.DayLayout, raw)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Field: field, Value: raw, Reason: "expected YYYY-MM-DD"}
	}
	return t, nil
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
	analyticsCmd.AddCommand(topClientsCmd)
	analyticsCmd.AddCommand(trendsCmd)
	analyticsCmd.AddCommand(networkCmd)

	topClientsCmd.Flags().IntVar(&topLimit, "limit", 0, "number of clients to show (default from config, 5)")
	trendsCmd.Flags().StringVar(&trendsFrom, "from", "", "first day, YYYY-MM-DD")
	trendsCmd.Flags().StringVar(&trendsTo, "to", "", "last day, YYYY-MM-DD")
	networkCmd.Flags().StringVar(&networkFormat, "format", "table", "table or dot")
}
