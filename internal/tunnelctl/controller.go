package tunnelctl

import (
	"context"
	"fmt"
	"time"

	"wgdesk/internal/terminal"
)

// Controller brings tunnels up and down by delegating to wg-quick, which
// reads the persisted <name>.conf itself. Interface state is owned by the
// external tool; wgdesk never mutates it directly.
type Controller struct {
	Binary  string
	Timeout time.Duration

	available func(string) bool
	run       func(ctx context.Context, binary string, timeout time.Duration, args ...string) (string, error)
}

func NewController(binary string, timeout time.Duration) *Controller {
	return &Controller{
		Binary:    binary,
		Timeout:   timeout,
		available: terminal.Available,
		run:       runCommand,
	}
}

func runCommand(ctx context.Context, binary string, timeout time.Duration, args ...string) (string, error) {
	return terminal.NewCommand(binary, args...).WithTimeout(timeout).Execute(ctx)
}

func (c *Controller) Up(ctx context.Context, name string) error {
	if !c.available(c.Binary) {
		return fmt.Errorf("%w: %s", ErrControllerUnavailable, c.Binary)
	}

	if _, err := c.run(ctx, c.Binary, c.Timeout, "up", name); err != nil {
		return fmt.Errorf("%w: %w", ErrActivationFailed, err)
	}

	return nil
}

func (c *Controller) Down(ctx context.Context, name string) error {
	if !c.available(c.Binary) {
		return fmt.Errorf("%w: %s", ErrControllerUnavailable, c.Binary)
	}

	if _, err := c.run(ctx, c.Binary, c.Timeout, "down", name); err != nil {
		return fmt.Errorf("%w: %w", ErrDeactivationFailed, err)
	}

	return nil
}
