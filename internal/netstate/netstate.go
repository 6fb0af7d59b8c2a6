package netstate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wgdesk/internal/logger"
	"wgdesk/internal/terminal"

	"golang.zx2c4.com/wireguard/wgctrl"
)

// Service answers which WireGuard interfaces are currently up. It asks the
// kernel directly over wgctrl and falls back to the wg binary when the
// control socket cannot be opened.
type Service struct {
	// WGBinary backs the fallback `wg show interfaces` query.
	WGBinary string
	Timeout  time.Duration
}

func NewService(wgBinary string, timeout time.Duration) *Service {
	return &Service{
		WGBinary: wgBinary,
		Timeout:  timeout,
	}
}

func (s *Service) ListUpInterfaces(ctx context.Context) ([]string, error) {
	client, err := wgctrl.New()

	if err != nil {
		logger.Debug("wgctrl unavailable (%v), falling back to %s", err, s.WGBinary)
		return s.listViaTool(ctx)
	}

	defer client.Close()

	devices, err := client.Devices()

	if err != nil {
		return nil, fmt.Errorf("enumerating wireguard devices: %w", err)
	}

	names := make([]string, 0, len(devices))

	for _, device := range devices {
		names = append(names, device.Name)
	}

	return names, nil
}

func (s *Service) listViaTool(ctx context.Context) ([]string, error) {
	if !terminal.Available(s.WGBinary) {
		return nil, fmt.Errorf("wireguard tool %q not found on PATH", s.WGBinary)
	}

	out, err := terminal.NewCommand(s.WGBinary, "show", "interfaces").WithTimeout(s.Timeout).Execute(ctx)

	if err != nil {
		return nil, fmt.Errorf("querying interface state: %w", err)
	}

	return ParseInterfaceNames(out), nil
}

// ParseInterfaceNames splits `wg show interfaces` output, which is a single
// whitespace-separated line of device names.
func ParseInterfaceNames(out string) []string {
	fields := strings.Fields(out)

	if len(fields) == 0 {
		return nil
	}

	return fields
}
