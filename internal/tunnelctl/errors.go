package tunnelctl

import "errors"

var (
	ErrControllerUnavailable = errors.New("wg-quick binary not found, install wireguard-tools")
	ErrActivationFailed      = errors.New("failed to bring tunnel up")
	ErrDeactivationFailed    = errors.New("failed to bring tunnel down")
)
