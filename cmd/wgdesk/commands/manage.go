package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"wgdesk/internal/reports"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runManage is the bare-invocation flow: disconnect the active tunnel if one
// is up, otherwise offer the configured tunnels for selection and connect.
func runManage(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	active, err := tunnelRegistry.FindActive(ctx)

	if err != nil {
		return err
	}

	if active != "" {
		if err := tunnelController.Down(ctx, active); err != nil {
			return err
		}

		cmd.Printf("Disconnected from %s\n", active)

		return nil
	}

	names, err := tunnelRegistry.ListConfigured()

	if err != nil {
		return err
	}

	if len(names) == 0 {
		return errors.New("no tunnel configurations found, import one with 'wgdesk import <source> <name>'")
	}

	name, err := promptSelection(cmd, names)

	if err != nil {
		return err
	}

	if err := tunnelController.Up(ctx, name); err != nil {
		return err
	}

	cmd.Printf("Connected to %s\n", name)

	return nil
}

func promptSelection(cmd *cobra.Command, names []string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("standard input is not a terminal, use 'wgdesk up <name>' instead")
	}

	menu, err := reports.RenderSelectionMenu(names)

	if err != nil {
		return "", err
	}

	cmd.Printf("Select a tunnel to connect:\n%s", menu)
	cmd.Printf("Enter a number or name [1-%d]: ", len(names))

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')

	if err != nil {
		return "", fmt.Errorf("reading selection: %w", err)
	}

	choice := strings.TrimSpace(line)

	if index, err := strconv.Atoi(choice); err == nil {
		if index < 1 || index > len(names) {
			return "", fmt.Errorf("selection %d out of range", index)
		}

		return names[index-1], nil
	}

	for _, name := range names {
		if name == choice {
			return name, nil
		}
	}

	return "", fmt.Errorf("unknown tunnel %q", choice)
}
