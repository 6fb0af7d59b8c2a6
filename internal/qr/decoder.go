package qr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wgdesk/internal/terminal"
)

type Decoder struct {
	// Binary is the external decoder, expected to support quiet raw-payload
	// output the way zbarimg does.
	Binary  string
	Timeout time.Duration

	available func(string) bool
	run       func(ctx context.Context, binary string, timeout time.Duration, args ...string) (string, error)
}

func NewDecoder(binary string, timeout time.Duration) *Decoder {
	return &Decoder{
		Binary:    binary,
		Timeout:   timeout,
		available: terminal.Available,
		run:       runCommand,
	}
}

func runCommand(ctx context.Context, binary string, timeout time.Duration, args ...string) (string, error) {
	return terminal.NewCommand(binary, args...).WithTimeout(timeout).Execute(ctx)
}

// Decode extracts the raw text payload of the first QR code in the image at
// path. The decoder binary is probed before invocation.
func (d *Decoder) Decode(ctx context.Context, path string) (string, error) {
	if !d.available(d.Binary) {
		return "", fmt.Errorf("%w: %s", ErrDecoderUnavailable, d.Binary)
	}

	payload, err := d.run(ctx, d.Binary, d.Timeout, "--quiet", "--raw", path)

	if errors.Is(err, terminal.ErrTimeout) {
		return "", fmt.Errorf("qr decode: %w", err)
	}

	if err != nil {
		// zbarimg exits non-zero when the image holds no decodable symbol.
		return "", fmt.Errorf("%w: %v", ErrNoPayload, err)
	}

	if strings.TrimSpace(payload) == "" {
		return "", ErrNoPayload
	}

	return payload, nil
}
