// Command seeder prepares a database for first use: it creates the settings
// row and the admin account and, with SEED_DEMO_DATA=true, a demo catalog.
//
// Flags:
//
//	--phase     comma-separated list of phases to run (default: all)
//	--migrate   apply pending migrations first
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/franken-backoffice/internal/app"
	"github.com/heartmarshall/franken-backoffice/internal/app/seeder"
	"github.com/heartmarshall/franken-backoffice/internal/config"
	"github.com/heartmarshall/franken-backoffice/migrations"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	migrateFlag := flag.Bool("migrate", false, "apply pending migrations before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	var phases []string
	if *phaseFlag != "" {
		for _, p := range strings.Split(*phaseFlag, ",") {
			if p = strings.TrimSpace(p); p != "" {
				phases = append(phases, p)
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if *migrateFlag || cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	svcs, err := app.NewServices(cfg, pool, logger)
	if err != nil {
		logger.Error("wire services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := seeder.NewPipeline(logger, seeder.Deps{
		Settings:  svcs.Settings,
		Users:     svcs.Auth,
		Customers: svcs.Customer,
		Products:  svcs.Product,
	}, cfg.Seed)

	start := time.Now()
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("seeder failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for phase, r := range pipeline.Results() {
		logger.Info("summary",
			slog.String("phase", phase),
			slog.Int("inserted", r.Inserted),
			slog.Int("skipped", r.Skipped),
			slog.Duration("duration", r.Duration),
		)
	}
	if pipeline.HasErrors() {
		logger.Error("seeder finished with errors", slog.Duration("total", time.Since(start)))
		os.Exit(1)
	}
	logger.Info("seeder finished", slog.Duration("total", time.Since(start)))
}
