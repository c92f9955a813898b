package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
	"time"

	"launchpad/core/server"

	"go.uber.org/zap"
)

// Launcher starts the backend server as a child process.
type Launcher struct {
	cfg    server.Config
	python string
	logger *zap.Logger
	cmd    *exec.Cmd
}

// New creates a launcher that runs the configured uvicorn target with
// the given interpreter (normally the venv's python).
func New(cfg server.Config, python string, logger *zap.Logger) *Launcher {
	return &Launcher{
		cfg:    cfg,
		python: python,
		logger: logger,
	}
}

// buildArgs composes the uvicorn argument vector.
func (l *Launcher) buildArgs() []string {
	args := []string{
		"-m", "uvicorn",
		l.cfg.App,
		"--host", l.cfg.Host,
		"--port", strconv.Itoa(l.cfg.Port),
	}
	if l.cfg.Reload {
		args = append(args, "--reload")
	}
	return args
}

// childEnv returns base extended with the API key variable. The value
// is passed through literally.
func (l *Launcher) childEnv(base []string) []string {
	if l.cfg.ApiKey == "" {
		return base
	}
	return append(base, server.ApiKeyEnv+"="+l.cfg.ApiKey)
}

// Start launches the server process without waiting for it. The child
// inherits the launcher's stdout/stderr so uvicorn's own logs remain
// visible.
func (l *Launcher) Start(_ context.Context) error {
	if l.cfg.ApiKey == "" {
		l.logger.Warn("No API key configured, " + server.ApiKeyEnv + " will not be set")
	}

	cmd := exec.Command(l.python, l.buildArgs()...)
	cmd.Env = l.childEnv(os.Environ())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	l.logger.Info("Starting uvicorn server",
		zap.String("app", l.cfg.App),
		zap.String("addr", l.cfg.BaseURL()),
		zap.Bool("reload", l.cfg.Reload),
	)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	l.cmd = cmd
	l.logger.Info("Server process started", zap.Int("pid", cmd.Process.Pid))
	return nil
}

// WaitStartup pauses for the configured startup delay. This is a plain
// wait, not a readiness check.
func (l *Launcher) WaitStartup() {
	l.logger.Info("Waiting for server startup", zap.Duration("delay", l.cfg.StartupDelay()))
	time.Sleep(l.cfg.StartupDelay())
}

// Wait blocks on the server process until it exits or ctx is
// cancelled. On cancellation the process is asked to terminate and
// killed after the shutdown grace period; that path returns nil.
func (l *Launcher) Wait(ctx context.Context) error {
	if l.cmd == nil {
		return fmt.Errorf("server was not started")
	}

	done := make(chan error, 1)
	go func() { done <- l.cmd.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	l.logger.Info("Shutting down server...")
	if err := l.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		l.logger.Warn("Terminate failed, killing process", zap.Error(err))
		_ = l.cmd.Process.Kill()
		<-done
		return nil
	}

	select {
	case <-done:
	case <-time.After(l.cfg.ShutdownTimeout()):
		l.logger.Warn("Server did not exit in time, killing process")
		_ = l.cmd.Process.Kill()
		<-done
	}
	return nil
}
