package commands

import (
	"errors"

	"wgdesk/internal/imports"
	"wgdesk/internal/tunnels"

	"github.com/spf13/cobra"
)

var ImportCmd = &cobra.Command{
	Use:   "import <source> <name>",
	Short: "Import a tunnel configuration from a QR-code image or a text file",
	Long: `Import a WireGuard tunnel configuration and persist it under the
configuration directory as <name>.conf.

The source is classified by content, not extension: images are decoded as
QR codes (requires zbarimg), anything else is read as plaintext. The content
is syntax-checked before it is written; nothing is persisted when validation
fails. The configuration content is never printed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourcePath, baseName := args[0], args[1]

		result, err := tunnelImporter.Import(cmd.Context(), sourcePath, baseName)

		if err != nil {
			recordImport(baseName, sourcePath, "unknown", imports.OutcomeFailure, err.Error())

			var syntaxErr *tunnels.SyntaxError

			if errors.As(err, &syntaxErr) {
				cmd.PrintErrf("Configuration rejected:\n")
				for _, violation := range syntaxErr.Violations {
					cmd.PrintErrf("  - %s\n", violation)
				}
			}

			return err
		}

		recordImport(result.Name, sourcePath, string(result.SourceType), imports.OutcomeSuccess, "")

		cmd.Printf("Imported tunnel %q to %s\n", result.Name, result.Path)

		return nil
	},
}
