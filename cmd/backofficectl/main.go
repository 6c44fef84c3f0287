// Command backofficectl is the operator CLI: migrations, stock corrections,
// ledger checks, invoice documents and spreadsheet exports without the HTTP
// API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/franken-backoffice/internal/app"
	"github.com/heartmarshall/franken-backoffice/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "backofficectl",
	Short: "Operator CLI for the back-office database",
	Long: `backofficectl runs maintenance tasks directly against the database
configured through the usual environment variables or CONFIG_PATH.

Stock adjustments and ledger checks go through the same services as the
HTTP API, so every change is recorded as a stock movement.`,
	Version:       app.CurrentBuild().String(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// runtime is the wiring shared by all subcommands.
type runtime struct {
	cfg    *config.Config
	log    *slog.Logger
	pool   *pgxpool.Pool
	svcs   *app.Services
	closer func()
}

func openRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	svcs, err := app.NewServices(cfg, pool, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &runtime{cfg: cfg, log: logger, pool: pool, svcs: svcs, closer: pool.Close}, nil
}

func (r *runtime) Close() { r.closer() }

// withRuntime adapts a handler that needs the wired services to cobra's RunE.
func withRuntime(fn func(cmd *cobra.Command, args []string, rt *runtime) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()
		return fn(cmd, args, rt)
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
