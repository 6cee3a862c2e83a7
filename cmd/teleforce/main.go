package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cobra"
	"github.com/teleforce-labs/teleforce/internal/catalog"
	"github.com/teleforce-labs/teleforce/internal/clock"
	"github.com/teleforce-labs/teleforce/internal/commission"
	"github.com/teleforce-labs/teleforce/internal/config"
	"github.com/teleforce-labs/teleforce/internal/migration"
	"github.com/teleforce-labs/teleforce/internal/network"
	"github.com/teleforce-labs/teleforce/internal/observability"
	"github.com/teleforce-labs/teleforce/internal/qualification"
	"github.com/teleforce-labs/teleforce/internal/ratelimit"
	"github.com/teleforce-labs/teleforce/internal/redis"
	"github.com/teleforce-labs/teleforce/internal/sale"
	"github.com/teleforce-labs/teleforce/internal/scheduler"
	"github.com/teleforce-labs/teleforce/internal/seed"
	"github.com/teleforce-labs/teleforce/internal/seller"
	"github.com/teleforce-labs/teleforce/internal/server"
	"github.com/teleforce-labs/teleforce/internal/statement"
	"github.com/teleforce-labs/teleforce/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "teleforce",
		Short:   "Teleforce CLI",
		Version: readVersionFromEnv(),
	}
	root.AddCommand(newMigrateCmd(), newServeCmd(), newSchedulerCmd(), newSeedCmd(), newAllCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe()
			return nil
		},
	}
}

func newSchedulerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scheduler",
		Short: "Run the background scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			runScheduler()
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo distribution network",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run migrations, then start the API server and scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runMigrate(); err != nil {
				return err
			}
			runMonolith()
			return nil
		},
	}
}

func runMigrate() error {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}
	_ = app.Stop(context.Background())
	return nil
}

func runServe() {
	app := fx.New(append(coreModules(),
		redis.Module,
		ratelimit.Module,
		server.Module,
	)...)
	app.Run()
}

func runScheduler() {
	app := fx.New(append(coreModules(),
		scheduler.Module,
	)...)
	app.Run()
}

func runMonolith() {
	app := fx.New(append(coreModules(),
		redis.Module,
		ratelimit.Module,
		server.Module,
		scheduler.Module,
	)...)
	app.Run()
}

func runSeed() error {
	app := fx.New(append(coreModules(),
		fx.Invoke(func(conn *gorm.DB) error {
			return seed.EnsureDemoNetwork(conn)
		}),
	)...)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	_ = app.Stop(context.Background())
	return nil
}

// coreModules is the shared dependency graph: config, logging and
// tracing, database, catalog plan, and every domain service.
func coreModules() []fx.Option {
	return []fx.Option{
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,
		catalog.Module,
		seller.Module,
		sale.Module,
		commission.Module,
		network.Module,
		qualification.Module,
		statement.Module,
	}
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func readVersionFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	return "dev"
}
