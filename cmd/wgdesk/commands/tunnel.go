package commands

import (
	"fmt"
	"os"

	"wgdesk/internal/reports"
	"wgdesk/internal/tunnels"

	"github.com/spf13/cobra"
)

func ensureConfigured(name string) error {
	if err := tunnels.ValidateName(name); err != nil {
		return err
	}

	if _, err := os.Stat(tunnelStore.Path(name)); err != nil {
		return fmt.Errorf("no configuration for tunnel %q, import one first", name)
	}

	return nil
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured tunnels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := tunnelRegistry.ListConfigured()

		if err != nil {
			return err
		}

		if len(names) == 0 {
			cmd.Println("No tunnel configurations found")
			return nil
		}

		active, err := tunnelRegistry.FindActive(cmd.Context())

		if err != nil {
			// Listing still works when interface state is unreadable.
			active = ""
		}

		listing, err := reports.RenderTunnelList(names, active)

		if err != nil {
			return err
		}

		cmd.Print(listing)

		return nil
	},
}

var UpCmd = &cobra.Command{
	Use:   "up <name>",
	Short: "Activate a configured tunnel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		if err := ensureConfigured(name); err != nil {
			return err
		}

		if err := tunnelController.Up(cmd.Context(), name); err != nil {
			return err
		}

		cmd.Printf("Connected to %s\n", name)

		return nil
	},
}

var DownCmd = &cobra.Command{
	Use:   "down [name]",
	Short: "Deactivate a tunnel (the active one when no name is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string

		if len(args) == 1 {
			name = args[0]

			if err := ensureConfigured(name); err != nil {
				return err
			}
		} else {
			active, err := tunnelRegistry.FindActive(cmd.Context())

			if err != nil {
				return err
			}

			if active == "" {
				cmd.Println("No active tunnel")
				return nil
			}

			name = active
		}

		if err := tunnelController.Down(cmd.Context(), name); err != nil {
			return err
		}

		cmd.Printf("Disconnected from %s\n", name)

		return nil
	},
}

var ActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the currently active tunnel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		active, err := tunnelRegistry.FindActive(cmd.Context())

		if err != nil {
			return err
		}

		status, err := reports.RenderStatus(active)

		if err != nil {
			return err
		}

		cmd.Print(status)

		return nil
	},
}
