package config

import (
	"os"
	"path/filepath"
	"time"

	"wgdesk/internal/logger"

	"github.com/joho/godotenv"
)

func init() {
	envFiles := []string{
		".env",
	}

	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err != nil {
			if !os.IsNotExist(err) {
				logger.Warn("Error loading %s: %v", envFile, err)
			}
		}
	}
}

func GetEnv(key string, defaultValue string) string {
	value := os.Getenv(key)

	if value == "" {
		return defaultValue
	}

	return value
}

func getHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("Could not determine home directory: %v", err)
		return ""
	}
	return homeDir
}

func getDefaultDatabasePath(fallback string, profile string) string {
	homeDir := getHomeDir()
	if homeDir == "" {
		return fallback
	}
	return filepath.Join(homeDir, ".wgdesk", profile, "wgdesk.db")
}

func getToolTimeout() time.Duration {
	raw := GetEnv("WGDESK_TOOL_TIMEOUT", "10s")

	timeout, err := time.ParseDuration(raw)
	if err != nil || timeout <= 0 {
		logger.Warn("Invalid WGDESK_TOOL_TIMEOUT %q, using 10s", raw)
		return 10 * time.Second
	}

	return timeout
}

type Configuration struct {
	DatabasePath string

	WGDeskProfile string

	// TunnelConfigDir holds the persisted <name>.conf files. Privileged path.
	TunnelConfigDir string

	QRDecoderBinary string
	WGQuickBinary   string
	WGBinary        string

	// ToolTimeout bounds every external tool invocation.
	ToolTimeout time.Duration
}

var WGDeskProfile = GetEnv("WGDESK_PROFILE", "default")
var DatabasePath = GetEnv("DATABASE_PATH", getDefaultDatabasePath("/var/lib/wgdesk/wgdesk.db", WGDeskProfile))

var Config = &Configuration{
	DatabasePath: DatabasePath,

	WGDeskProfile: WGDeskProfile,

	TunnelConfigDir: GetEnv("WGDESK_CONFIG_DIR", "/etc/wireguard"),

	QRDecoderBinary: GetEnv("WGDESK_QR_DECODER", "zbarimg"),
	WGQuickBinary:   GetEnv("WGDESK_WG_QUICK", "wg-quick"),
	WGBinary:        GetEnv("WGDESK_WG", "wg"),

	ToolTimeout: getToolTimeout(),
}
