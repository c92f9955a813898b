package cmd

import (
	"fmt"

	"launchpad/core/config"
	"launchpad/core/logger"
	"launchpad/core/pyenv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Prepare the environment without starting the server",
	Long:  `Creates the virtual environment if needed, upgrades pip and installs dependencies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()
		logg = logger.WithRunID(logg)

		env := pyenv.New(cfg.Python, pyenv.NewRunner(logg), logg)
		if err := env.Ensure(ctx); err != nil {
			return err
		}
		if err := env.UpgradePip(ctx); err != nil {
			return err
		}

		manifest, err := pyenv.FindManifest(".")
		if err != nil {
			return err
		}
		if err := env.InstallManifest(ctx, manifest); err != nil {
			return err
		}

		logg.Info("Environment ready", zap.String("python", env.Python()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(setupCmd)
}
