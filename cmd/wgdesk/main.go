package main

import (
	"os"

	"wgdesk/cmd/wgdesk/commands"
	"wgdesk/cmd/wgdesk/config"
	"wgdesk/internal/database"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wgdesk",
	Short: "Manage local WireGuard VPN tunnels",
	Long: `wgdesk manages local WireGuard VPN tunnels: import configurations from
QR-code images or plaintext files, then connect and disconnect by name.

Run without arguments to toggle: an active tunnel is disconnected; otherwise
you pick a configured tunnel to connect.

Requires administrative privileges (the configuration directory and interface
state are privileged), wireguard-tools for connect/disconnect, and zbar-tools
for QR-code imports.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	db, err := database.InitDB()

	if err != nil {
		// History is an extra; tunnel operations still work without it.
		rootCmd.PrintErrf("Failed to initialize database at %s: %v\n", config.Config.DatabasePath, err)
	}

	commands.RegisterCommands(rootCmd, db)

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrf("%v\n", err)

		if db != nil {
			database.CloseDB(db)
		}

		os.Exit(1)
	}

	if db != nil {
		if err := database.CloseDB(db); err != nil {
			rootCmd.PrintErrf("Failed to close database: %v\n", err)
		}
	}
}
