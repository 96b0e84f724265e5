package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-insights/internal/config"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/storage"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.ProcessEnvironmentVariables()
			if err != nil {
				return fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
			}
			logger := logging.SetupLogging(env.LogLevel)

			if env.StorageDriver != config.StorageDriverPostgres {
				logger.WithField("storageDriver", env.StorageDriver).Info("Migration skipped")
				return nil
			}

			store, err := storage.NewStorage(env)
			if err != nil {
				return fmt.Errorf("storage.NewStorage: %w", err)
			}
			defer store.Close()

			result, err := storage.RunMigrations(store.DB)
			if err != nil {
				return err
			}

			logger.WithFields(logrus.Fields{
				"preMigrationVersion":  result.PreMigrationVersion,
				"postMigrationVersion": result.PostMigrationVersion,
			}).Info("Migration status")
			return nil
		},
	}
}
