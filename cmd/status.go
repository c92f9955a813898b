package cmd

import (
	"fmt"
	"time"

	"launchpad/core/config"
	"launchpad/core/logger"
	"launchpad/core/probe"

	"github.com/spf13/cobra"
)

var (
	statusPortFlag    int
	statusTimeoutFlag time.Duration
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Wait until the backend answers on the UI URL",
	Long: `Polls the UI URL until the server responds or the timeout elapses.
Useful after 'up' when the fixed startup delay was not enough.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = statusPortFlag
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		timeout := cfg.Server.ReadyTimeout()
		if cmd.Flags().Changed("timeout") {
			timeout = statusTimeoutFlag
		}

		p := probe.New(cfg.Server.UIURL(), timeout, 500*time.Millisecond, logg)
		return p.WaitReady(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)

	statusCmd.Flags().IntVar(&statusPortFlag, "port", 8000, "Port of the backend server")
	statusCmd.Flags().DurationVar(&statusTimeoutFlag, "timeout", 30*time.Second, "How long to wait for the server (overrides config)")
}
