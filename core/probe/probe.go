package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Probe polls a URL until the server behind it answers.
type Probe struct {
	url      string
	timeout  time.Duration
	interval time.Duration
	logger   *zap.Logger
}

// New creates a probe for the given URL. timeout bounds the whole
// wait, interval is the pause between attempts.
func New(url string, timeout, interval time.Duration, logger *zap.Logger) *Probe {
	return &Probe{
		url:      url,
		timeout:  timeout,
		interval: interval,
		logger:   logger,
	}
}

// Check performs a single GET against the URL and returns the status
// code.
func (p *Probe) Check() (int, error) {
	agent := fiber.Get(p.url)
	agent.Timeout(p.interval)

	code, _, errs := agent.String()
	if len(errs) > 0 {
		return 0, errs[0]
	}
	return code, nil
}

// WaitReady polls until the server answers with a non-5xx status, the
// timeout elapses, or ctx is cancelled. Connection errors count as not
// ready.
func (p *Probe) WaitReady(ctx context.Context) error {
	deadline := time.Now().Add(p.timeout)

	var lastErr error
	for attempt := 1; ; attempt++ {
		code, err := p.Check()
		if err == nil && code < 500 {
			p.logger.Info("Server is ready",
				zap.String("url", p.url),
				zap.Int("status", code),
				zap.Int("attempts", attempt),
			)
			return nil
		}
		if err != nil {
			lastErr = err
		}

		if time.Now().After(deadline) {
			if lastErr != nil {
				return fmt.Errorf("server not ready after %s: %w", p.timeout, lastErr)
			}
			return fmt.Errorf("server not ready after %s: last status %d", p.timeout, code)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.interval):
		}
	}
}
