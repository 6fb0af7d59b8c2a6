package terminal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var ErrTimeout = errors.New("external command timed out")

type Command struct {
	Command string
	Args    []string
	Dir     string

	// Timeout bounds the command run. Zero means no bound.
	Timeout time.Duration
}

func NewCommand(command string, args ...string) *Command {
	return &Command{
		Command: command,
		Args:    args,
	}
}

func (c *Command) WithTimeout(timeout time.Duration) *Command {
	c.Timeout = timeout
	return c
}

// Available reports whether the named binary can be resolved on PATH.
func Available(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

func (c *Command) Execute(ctx context.Context) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Command, c.Args...)

	if c.Dir != "" {
		cmd.Dir = c.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("%w: %s", ErrTimeout, c.Command)
	}

	if err != nil {
		return "", fmt.Errorf("command failed: %v\nStderr: %s", err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}
