package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-insights/api"
	"github.com/carson-networks/budget-insights/internal/config"
	"github.com/carson-networks/budget-insights/internal/events"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/operator"
	"github.com/carson-networks/budget-insights/internal/service"
	"github.com/carson-networks/budget-insights/internal/storage"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.ProcessEnvironmentVariables()
			if err != nil {
				return fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
			}

			logger := logging.SetupLogging(env.LogLevel)
			logger.WithField("storageDriver", env.StorageDriver).Info("budget-insights starting")

			store, err := storage.NewStorage(env)
			if err != nil {
				return fmt.Errorf("storage.NewStorage: %w", err)
			}
			defer store.Close()

			publisher, err := events.NewPublisher(env, logger)
			if err != nil {
				return fmt.Errorf("events.NewPublisher: %w", err)
			}
			defer publisher.Close()

			delegator := operator.NewOperatorDelegator(store, env.OperatorWorkers, publisher, logger)
			delegator.Start()
			defer delegator.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rest := api.Rest{
				Logger:   logger,
				Port:     env.HTTPPort,
				Storage:  store,
				Service:  service.NewService(store, env.DashboardTimeout),
				Operator: delegator,
			}
			return rest.Serve(ctx)
		},
	}
}
