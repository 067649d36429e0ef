package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/IIPisarenko/ITOG/internal/adapter/system"
	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/service"
	"github.com/IIPisarenko/ITOG/internal/infrastructure/sqlite"
	"github.com/IIPisarenko/ITOG/pkg/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile      string
	dbPath       string
	outputFormat string
	logLevel     string

	// Shared state set during PersistentPreRunE
	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "orderdesk",
	Short: "orderdesk - clients, products and orders in a local SQLite file",
	Long: `orderdesk records clients, products and orders in a single SQLite file
and reports on them.

It provides:
- Client, product and order entry with input validation
- Top clients, daily order trends and the client co-purchase network
- CSV and JSON export of the client list`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		closeLog()

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		if outputFormat != "" {
			cfg.Output = outputFormat
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, logCloser, err = newLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		return nil
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.ExecuteContext(context.Background())
	closeLog()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return exitCode(err)
}

// Exit codes by error kind.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitNotFound   = 3
	ExitConstraint = 4
	ExitConnection = 5
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case domain.IsValidation(err):
		return ExitValidation
	case errors.Is(err, domain.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, domain.ErrConstraint):
		return ExitConstraint
	case errors.Is(err, domain.ErrConnection):
		return ExitConnection
	default:
		return ExitFailure
	}
}

// RootCmd returns the root cobra.Command for testing purposes.
func RootCmd() *cobra.Command {
	return rootCmd
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultConfigPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database file (default \""+config.DefaultDBPath+"\")")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json, yaml (default \"table\")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default \"info\")")
}

// initServices opens the store and wires the services on top of it
func initServices(ctx context.Context) (*Services, error) {
	db, err := sqlite.Open(cfg.DBPath, sqlite.Options{
		ForeignKeys: cfg.ForeignKeys,
		BusyTimeout: time.Duration(cfg.BusyTimeoutMS) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.DebugContext(ctx, "store_opened", "path", cfg.DBPath, "foreign_keys", cfg.ForeignKeys)

	clientRepo := sqlite.NewClientRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)
	analyticsRepo := sqlite.NewAnalyticsRepository(db)

	return &Services{
		DB:               db,
		Files:            system.NewAdapter(),
		ClientService:    service.NewClientService(clientRepo, logger),
		ProductService:   service.NewProductService(productRepo, logger),
		OrderService:     service.NewOrderService(orderRepo, clientRepo, productRepo, logger),
		AnalyticsService: service.NewAnalyticsService(analyticsRepo),
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB               *sqlite.DB
	Files            *system.Adapter
	ClientService    *service.ClientService
	ProductService   *service.ProductService
	OrderService     *service.OrderService
	AnalyticsService *service.AnalyticsService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			logger.Warn("store_close_failed", "error", err)
		}
	}
}
