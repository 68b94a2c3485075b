package main

import (
	"context"
	root "shipments"
	"shipments/internal/config"
	"shipments/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if cfg.Storage.Driver != config.StorageDriverPostgres {
				logger.Info(ctx, "nothing to migrate", zap.String("driver", cfg.Storage.Driver))

				return
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			applied, err := strg.Migrate(ctx, root.Migrations)
			if err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			logger.Info(ctx, "database migrated", zap.Int("applied", applied))
		},
	}

	return cmd
}
