package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Penny-Liu/parttime/cmd/cli/commands"
	"github.com/Penny-Liu/parttime/internal/config"
	"github.com/Penny-Liu/parttime/pkg/clients/gasclient"
	"github.com/Penny-Liu/parttime/pkg/core/services"
	"github.com/Penny-Liu/parttime/pkg/core/state"
	"github.com/Penny-Liu/parttime/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parttime",
		Short: "parttime - clinic shift-scheduling calendar",
		Long:  `A shift-scheduling calendar for the clinic roster: students sign up for duty days, the administrator confirms or closes shifts, and everything syncs to the backing spreadsheet.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (selects parttime_config.<env>.yaml)")

	rootCmd.AddCommand(commands.LoginCmd(appRef()))
	rootCmd.AddCommand(commands.LogoutCmd(appRef()))
	rootCmd.AddCommand(commands.CalendarCmd(appRef()))
	rootCmd.AddCommand(commands.ToggleCmd(appRef()))
	rootCmd.AddCommand(commands.SaveCmd(appRef()))
	rootCmd.AddCommand(commands.SyncCmd(appRef()))
	rootCmd.AddCommand(commands.StatsCmd(appRef()))
	rootCmd.AddCommand(commands.PrintCmd(appRef()))
	rootCmd.AddCommand(commands.AssignCmd(appRef()))
	rootCmd.AddCommand(commands.UserCmd(appRef()))
	rootCmd.AddCommand(commands.SettingsCmd(appRef()))
	rootCmd.AddCommand(commands.InitCloudCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the lazily initialized AppContext. Command constructors
// capture the pointer; initApp fills it in before any RunE fires.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, the backend client, and loads the initial
// snapshot into the store.
func initApp() error {
	ctx := context.Background()

	logger, err := logging.InitLogger(envOrDefault())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Starting application", zap.String("environment", envOrDefault()))

	cfg, err := config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("Configuration loaded", zap.String("endpoint", cfg.EndpointURL))

	remote := gasclient.NewClient(cfg.EndpointURL)
	store := state.New(nil)

	*appRef() = *commands.NewAppContext(ctx, cfg, logger, remote, store)

	// Initial load. A failure here is survivable: the store starts from the
	// built-in defaults and a later sync can recover.
	if _, err := services.Reload(ctx, store, remote, logger); err != nil {
		logger.Warn("Initial data load failed, starting from defaults", zap.Error(err))
		fmt.Fprintln(os.Stderr, "⚠️  無法載入雲端資料，先以內建預設資料啟動，稍後可用 sync 重試")
	}

	return nil
}

func envOrDefault() string {
	if env == "" {
		return "prod"
	}
	return env
}
