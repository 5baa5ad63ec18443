package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torneokills/torneo/internal/config"
	"github.com/torneokills/torneo/internal/factory"
)

type migrator interface {
	Migrate(ctx context.Context) error
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the tables on a postgres or sqlite store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *appConfig
			cfg.Store.AutoMigrate = false

			store, err := factory.OpenStorage(&cfg)
			if err != nil {
				return err
			}
			defer closeLogged(store, "storage")

			m, ok := store.(migrator)
			if !ok {
				return fmt.Errorf("store type %q has no schema to migrate", cfg.Store.Type)
			}
			if err := m.Migrate(cmd.Context()); err != nil {
				return err
			}

			newOutput(cmd).PrintMessage(fmt.Sprintf("Migrated %s store", storeLabel(&cfg)))
			return nil
		},
	}
}

func storeLabel(cfg *config.Config) string {
	if cfg.Store.Type == "" {
		return config.StoreMemory
	}
	return cfg.Store.Type
}
