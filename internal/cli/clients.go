package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/listing"
	"github.com/IIPisarenko/ITOG/internal/core/repository"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	yesFlag bool

	listQuery   string
	listOrder   string
	listPage    int
	listPerPage int

	// stdinIsTerminal is replaced in tests.
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
}

var clientsAddCmd = &cobra.Command{
	Use:   "add <name> <email> <phone>",
	Short: "Add a new client",
	Long: `Add a new client.

The name may contain letters and spaces only, the phone must be exactly
10 digits and the e-mail must not belong to another client.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		client, err := services.ClientService.Add(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			if errors.Is(err, domain.ErrConstraint) {
				return fmt.Errorf("a client with e-mail %s already exists: %w", strings.TrimSpace(args[1]), err)
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Client '%s' added (id %d)\n", client.Name, client.ID)
		return nil
	},
}

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete every client with the given name",
	Long: `Delete every client whose name matches exactly.

Orders placed by the deleted clients are kept. Without --yes the deletion
is confirmed interactively; when stdin is not a terminal --yes is required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		if !yesFlag {
			confirmed, err := confirm(cmd, fmt.Sprintf("Are you sure you want to delete client '%s'?", name))
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
		}

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		removed, err := services.ClientService.Delete(cmd.Context(), name)
		if err != nil {
			return err
		}

		if removed == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No client named '%s'\n", name)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d client(s) named '%s'\n", removed, name)
		return nil
	},
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	Long: `List clients.

--query takes conditions separated by ';', e.g. "name|like|А%;id|gt|10".
--order takes fields separated by ',', e.g. "name|asc,id|desc".
Fields: ` + strings.Join(repository.ClientQueryFields, ", "),
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

		clients, total, err := services.ClientService.Search(cmd.Context(), repository.ClientFilter{ListFilter: filter})
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), clients, func(w io.Writer) error {
			headers, rows := fieldRows(clients, func(c *domain.Client) int64 { return c.ID })
			if err := writeTable(w, headers, rows); err != nil {
				return err
			}
			if filter.PerPage > 0 {
				fmt.Fprintf(w, "Page %d, %d of %d client(s)\n", max(filter.Page, 1), len(clients), total)
			}
			return nil
		})
	},
}

// parseListFlags builds a listing filter from the shared list flags.
func parseListFlags() (listing.ListFilter, error) {
	var filter listing.ListFilter
	var err error

	if filter.Filters, err = listing.ParseQuery(listQuery); err != nil {
		return filter, &domain.ValidationError{Field: "query", Value: listQuery, Reason: err.Error()}
	}
	if filter.Order, err = listing.ParseOrder(listOrder); err != nil {
		return filter, &domain.ValidationError{Field: "order", Value: listOrder, Reason: err.Error()}
	}
	filter.Page = listPage
	filter.PerPage = listPerPage

	return filter, nil
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&listQuery, "query", "", "filter conditions, field|operator|value separated by ';'")
	cmd.Flags().StringVar(&listOrder, "order", "", "sort order, field|asc or field|desc separated by ','")
	cmd.Flags().IntVar(&listPage, "page", 1, "page number")
	cmd.Flags().IntVar(&listPerPage, "per-page", 0, "rows per page (0 shows all)")
}

// confirm asks a yes/no question on the terminal. It refuses to guess when
// stdin is not interactive.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	if !stdinIsTerminal() {
		return false, errors.New("refusing to delete without confirmation; pass --yes")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (yes/no): ", question)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

func init() {
	rootCmd.AddCommand(clientsCmd)
	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsDeleteCmd)
	clientsCmd.AddCommand(clientsListCmd)

	clientsDeleteCmd.Flags().BoolVar(&yesFlag, "yes", false, "skip the confirmation prompt")
	addListFlags(clientsListCmd)
}
