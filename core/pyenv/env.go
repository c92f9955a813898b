package pyenv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
)

// Env manages a Python virtual environment.
type Env struct {
	cfg    Config
	runner Runner
	logger *zap.Logger
}

// New creates a new environment manager.
func New(cfg Config, runner Runner, logger *zap.Logger) *Env {
	return &Env{
		cfg:    cfg,
		runner: runner,
		logger: logger,
	}
}

// Exists reports whether the venv has already been created. The
// pyvenv.cfg marker is what the venv module itself writes.
func (e *Env) Exists() bool {
	info, err := os.Stat(filepath.Join(e.cfg.VenvDir, "pyvenv.cfg"))
	return err == nil && !info.IsDir()
}

// Ensure creates the virtual environment if it does not exist yet.
func (e *Env) Ensure(ctx context.Context) error {
	if e.Exists() {
		e.logger.Info("Reusing existing virtual environment", zap.String("dir", e.cfg.VenvDir))
		return nil
	}

	e.logger.Info("Creating virtual environment", zap.String("dir", e.cfg.VenvDir))
	if err := e.runner.Run(ctx, e.cfg.Interpreter, "-m", "venv", e.cfg.VenvDir); err != nil {
		return fmt.Errorf("create venv: %w", err)
	}
	return nil
}

// Python returns the path of the interpreter inside the venv.
func (e *Env) Python() string {
	return e.pythonFor(runtime.GOOS)
}

func (e *Env) pythonFor(goos string) string {
	if goos == "windows" {
		return filepath.Join(e.cfg.VenvDir, "Scripts", "python.exe")
	}
	return filepath.Join(e.cfg.VenvDir, "bin", "python")
}

// UpgradePip upgrades pip inside the venv.
func (e *Env) UpgradePip(ctx context.Context) error {
	e.logger.Info("Upgrading pip")
	if err := e.runner.Run(ctx, e.Python(), "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf("upgrade pip: %w", err)
	}
	return nil
}

// InstallManifest installs the packages listed in the given manifest
// into the venv.
func (e *Env) InstallManifest(ctx context.Context, manifest string) error {
	e.logger.Info("Installing dependencies", zap.String("manifest", manifest))
	if err := e.runner.Run(ctx, e.Python(), "-m", "pip", "install", "-r", manifest); err != nil {
		return fmt.Errorf("install dependencies: %w", err)
	}
	return nil
}
