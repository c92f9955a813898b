package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchpad/core/browser"
	"launchpad/core/config"
	"launchpad/core/logger"
	"launchpad/core/probe"
	"launchpad/core/pyenv"
	"launchpad/core/runner"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	apiKeyFlag    string
	portFlag      int
	attachFlag    bool
	waitReadyFlag bool
	noBrowserFlag bool
)

// upCmd represents the up command
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Bootstrap the environment and launch the backend",
	Long: `Runs the full setup flow: ensures the virtual environment exists,
upgrades pip, installs dependencies, starts the uvicorn server and opens
the web UI in the default browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// 1. Load Configuration (flags override env/.env)
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("api-key") {
			cfg.Server.ApiKey = apiKeyFlag
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = portFlag
		}
		if !cfg.Server.IsValidPort() {
			return fmt.Errorf("invalid port: %d", cfg.Server.Port)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()
		logg = logger.WithRunID(logg)
		zap.ReplaceGlobals(logg)

		// 3. Prepare the Python environment
		env := pyenv.New(cfg.Python, pyenv.NewRunner(logg), logg)
		if err := env.Ensure(ctx); err != nil {
			return err
		}
		if err := env.UpgradePip(ctx); err != nil {
			return err
		}

		// 4. Install dependencies from the first existing manifest
		manifest, err := pyenv.FindManifest(".")
		if err != nil {
			return err
		}
		if err := env.InstallManifest(ctx, manifest); err != nil {
			return err
		}

		// 5. Start the server (detached)
		launch := runner.New(cfg.Server, env.Python(), logg)
		if err := launch.Start(ctx); err != nil {
			return err
		}

		// 6. Wait before opening the browser
		if waitReadyFlag {
			p := probe.New(cfg.Server.UIURL(), cfg.Server.ReadyTimeout(), 500*time.Millisecond, logg)
			if err := p.WaitReady(ctx); err != nil {
				return err
			}
		} else {
			launch.WaitStartup()
		}

		// 7. Open the browser
		if !noBrowserFlag {
			url := cfg.Server.UIURL()
			if err := browser.Open(url); err != nil {
				logg.Warn("Failed to open browser", zap.Error(err))
			} else {
				logg.Info("Opened browser", zap.String("url", url))
			}
		}

		if !attachFlag {
			return nil
		}

		// 8. Attached mode: stay in the foreground and forward Ctrl-C
		sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return launch.Wait(sctx)
	},
}

func init() {
	RootCmd.AddCommand(upCmd)

	upCmd.Flags().StringVar(&apiKeyFlag, "api-key", "", "API key exported to the backend")
	upCmd.Flags().IntVar(&portFlag, "port", 8000, "Port for the backend server")
	upCmd.Flags().BoolVar(&attachFlag, "attach", false, "Stay attached to the server process")
	upCmd.Flags().BoolVar(&waitReadyFlag, "wait-ready", false, "Poll the UI URL instead of the fixed startup delay")
	upCmd.Flags().BoolVar(&noBrowserFlag, "no-browser", false, "Do not open the browser")
}
