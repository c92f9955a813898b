package pyenv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Runner executes external commands. It exists so the environment
// logic can be tested without spawning real processes.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct {
	logger *zap.Logger
}

// NewRunner returns a Runner backed by os/exec. Child output is
// forwarded to the launcher's own stdout/stderr.
func NewRunner(logger *zap.Logger) Runner {
	return &execRunner{logger: logger}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) error {
	r.logger.Debug("Running command",
		zap.String("cmd", name+" "+strings.Join(args, " ")),
	)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}
