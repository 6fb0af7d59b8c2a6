package commands

import (
	"wgdesk/cmd/wgdesk/config"
	"wgdesk/internal/imports"
	"wgdesk/internal/logger"
	"wgdesk/internal/mediatype"
	"wgdesk/internal/netstate"
	"wgdesk/internal/privileges"
	"wgdesk/internal/qr"
	"wgdesk/internal/tunnelctl"
	"wgdesk/internal/tunnels"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	dbInstance        *gorm.DB
	importsRepository *imports.Repository
	tunnelStore       *tunnels.Store
	tunnelRegistry    *tunnels.Registry
	tunnelImporter    *tunnels.Importer
	tunnelController  *tunnelctl.Controller
)

func RegisterCommands(rootCmd *cobra.Command, db *gorm.DB) {
	dbInstance = db

	if db != nil {
		importsRepository = imports.NewRepository(db)
	}

	tunnelStore = tunnels.NewStore(config.Config.TunnelConfigDir)
	tunnelRegistry = &tunnels.Registry{
		Store: tunnelStore,
		State: netstate.NewService(config.Config.WGBinary, config.Config.ToolTimeout),
	}
	tunnelImporter = &tunnels.Importer{
		Detector: &mediatype.Service{},
		Decoder:  qr.NewDecoder(config.Config.QRDecoderBinary, config.Config.ToolTimeout),
		Store:    tunnelStore,
	}
	tunnelController = tunnelctl.NewController(config.Config.WGQuickBinary, config.Config.ToolTimeout)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return privileges.Ensure()
	}
	rootCmd.RunE = runManage

	rootCmd.AddCommand(ImportCmd)
	rootCmd.AddCommand(ListCmd)
	rootCmd.AddCommand(UpCmd)
	rootCmd.AddCommand(DownCmd)
	rootCmd.AddCommand(ActiveCmd)
	rootCmd.AddCommand(HistoryCmd)
}

// recordImport best-effort appends to the audit trail; a broken history db
// never blocks an import.
func recordImport(tunnelName, sourcePath, sourceType, outcome, detail string) {
	if importsRepository == nil {
		return
	}

	if _, err := importsRepository.Record(tunnelName, sourcePath, sourceType, outcome, detail); err != nil {
		logger.Warn("Failed to record import history: %v", err)
	}
}
