package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-insights/internal/config"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/dashboard"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
	"github.com/carson-networks/budget-insights/internal/storage"
)

type dashboardFlags struct {
	start string
	end   string
	month string
	year  string
}

func newDashboardCmd() *cobra.Command {
	var flags dashboardFlags
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard as JSON",
		Example: `  budget-insights dashboard --month 1 --year 2024
  budget-insights dashboard --start 2024-01-01T00:00:00Z --end 2024-03-31T23:59:59Z`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.ProcessEnvironmentVariables()
			if err != nil {
				return fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
			}

			store, err := storage.NewStorage(env)
			if err != nil {
				return fmt.Errorf("storage.NewStorage: %w", err)
			}
			defer store.Close()

			logger := logging.SetupLogging(env.LogLevel)
			logData := logging.NewLogData(logger)
			ctx := logging.WithLogData(cmd.Context(), logData)

			err = printDashboard(ctx, cmd.OutOrStdout(), store, env.DashboardTimeout, flags)
			if err != nil {
				logData.Log().WithError(err).Error("Dashboard.Error")
				return err
			}
			logData.Log().Debug("Dashboard.Complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.start, "start", "", "RFC3339 start of the window, inclusive")
	cmd.Flags().StringVar(&flags.end, "end", "", "RFC3339 end of the window, inclusive")
	cmd.Flags().StringVar(&flags.month, "month", "", "calendar month 1-12, selects a month together with --year")
	cmd.Flags().StringVar(&flags.year, "year", "", "calendar year, selects a month together with --month")
	return cmd
}

func printDashboard(ctx context.Context, out io.Writer, store *storage.Storage, timeout time.Duration, flags dashboardFlags) error {
	query, err := dashboard.ParseDashboardQuery(flags.start, flags.end, flags.month, flags.year)
	if err != nil {
		return err
	}

	result, err := service.NewDashboardService(store, timeout).ComputeDashboard(ctx, query)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dashboard.NewDashboardBody(result))
}
