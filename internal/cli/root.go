// Package cli holds the housestock command line: the API server plus maintenance commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/housestock/backend/config"
	"github.com/housestock/backend/internal/infrastructure/store"
	"github.com/housestock/backend/internal/logger"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "housestock",
	Short: "Wine cellar and pantry inventory backend",
	Long: `housestock serves the REST API for a household wine cellar and pantry,
runs database migrations, seeds test data and extracts wine data from shop pages.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

// Execute runs the root command. It is called by main.main().
// SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "loglevel", "l", "", "override log level: debug, info, warn, error")
}

// setup loads the configuration and initializes the global logger.
// A non-empty levelOverride replaces the configured level; the --loglevel flag wins over both.
func setup(levelOverride string) (*config.Config, *zap.SugaredLogger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Log.Level
	if levelOverride != "" {
		level = levelOverride
	}
	if logLevel != "" {
		level = logLevel
	}

	if err := logger.Init(level, cfg.Server.Environment); err != nil {
		return nil, nil, err
	}
	return cfg, logger.Get(), nil
}

// openDatabase connects to the configured store and brings its schema up to date
func openDatabase(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*sql.DB, error) {
	db, err := store.Open(ctx, store.Config{
		Driver:            cfg.Database.Driver,
		DSN:               cfg.Database.DSN,
		ConnectRetries:    cfg.Database.ConnectRetries,
		ConnectRetryDelay: cfg.Database.ConnectRetryDelay,
	}, log)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(db, cfg.Database.Driver, log); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
