package commands

import (
	"errors"

	"wgdesk/internal/reports"

	"github.com/spf13/cobra"
)

var historyLimit int

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent import attempts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if importsRepository == nil {
			return errors.New("import history is unavailable, the local database could not be opened")
		}

		records, err := importsRepository.Recent(historyLimit)

		if err != nil {
			return err
		}

		if len(records) == 0 {
			cmd.Println("No imports recorded yet")
			return nil
		}

		out, err := reports.RenderHistory(records)

		if err != nil {
			return err
		}

		cmd.Print(out)

		return nil
	},
}

func init() {
	HistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records to show")
}
