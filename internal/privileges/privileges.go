package privileges

import (
	"errors"
	"os"
)

var ErrInsufficientPrivilege = errors.New("administrative privileges required, re-run with sudo or pkexec")

// euid is swappable for tests.
var euid = os.Geteuid

// Ensure verifies the process runs with root privileges. Reading and writing
// the tunnel configuration directory and mutating interface state both need
// them, so this is checked once at entry before anything executes.
func Ensure() error {
	if euid() != 0 {
		return ErrInsufficientPrivilege
	}

	return nil
}
