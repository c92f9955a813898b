package cmd

import (
	"fmt"

	"launchpad/core/browser"
	"launchpad/core/config"
	"launchpad/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var openPortFlag int

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the web UI in the browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = openPortFlag
		}
		if !cfg.Server.IsValidPort() {
			return fmt.Errorf("invalid port: %d", cfg.Server.Port)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		url := cfg.Server.UIURL()
		if err := browser.Open(url); err != nil {
			return fmt.Errorf("open browser: %w", err)
		}
		logg.Info("Opened browser", zap.String("url", url))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(openCmd)

	openCmd.Flags().IntVar(&openPortFlag, "port", 8000, "Port of the backend server")
}
