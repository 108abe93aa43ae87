package dashboard

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Alijeyrad/cardioai/config"
	httpapi "github.com/Alijeyrad/cardioai/internal/api/http"
	"github.com/Alijeyrad/cardioai/internal/api/http/router"
	"github.com/Alijeyrad/cardioai/internal/app"
	"github.com/Alijeyrad/cardioai/pkg/logs"
)

func NewStartCommand() *cobra.Command {
	var shutdownTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the dashboard server",
		Long: `Start the dashboard server.

Patient records live in memory for the life of the process. Set
dashboard.export_on_shutdown to write them to the export directory on stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(cfgPath)
			if err != nil {
				return err
			}

			logger, stopLogs := logs.New(cfg)
			defer stopLogs()
			slog.SetDefault(logger)

			fxApp := fx.New(
				fx.Supply(cfg),
				fx.Supply(httpapi.Listener{Name: "cardioai-dashboard", Port: cfg.Dashboard.Port}),
				app.InfraModule,
				app.ServiceModule,
				app.WorkerModule,
				fx.Provide(fx.Annotate(router.NewDashboard, fx.As(new(httpapi.Registrar)))),
				httpapi.Module,
				fx.Invoke(func(*fiber.App) {}),
				fx.StopTimeout(shutdownTimeout),
				fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
			)
			if err := fxApp.Err(); err != nil {
				return err
			}

			fxApp.Run()
			return nil
		},
	}

	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "Maximum time to wait for graceful shutdown")

	return cmd
}
