package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/IIPisarenko/ITOG/internal/adapter/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <csv|json> <file>",
	Short: "Export all clients to a CSV or JSON file",
	Long: `Export all clients to a CSV or JSON file.

CSV files start with the header "Имя,E-mail,Номер телефона". JSON files
hold an array of {"name","email","phone"} objects. Missing parent
directories are created. The file is replaced only once the export has
been written completely.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(args[0])
		if err != nil {
			return err
		}
		path := args[1]

		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		clients, err := services.ClientService.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load clients: %w", err)
		}

		if err := services.Files.CreateDirectory(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to export clients: %w", err)
		}

		err = services.Files.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
			return export.Write(w, format, clients)
		})
		if err != nil {
			return fmt.Errorf("failed to export clients: %w", err)
		}

		logger.Info("clients_exported", "format", format, "path", path, "count", len(clients))
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d client(s) to %s\n", len(clients), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
