package qr

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"wgdesk/internal/terminal"
)

func newTestDecoder(output string, runErr error) *Decoder {
	decoder := NewDecoder("zbarimg", time.Second)
	decoder.available = func(string) bool { return true }
	decoder.run = func(ctx context.Context, binary string, timeout time.Duration, args ...string) (string, error) {
		return output, runErr
	}
	return decoder
}

func TestDecoder_Decode_ReturnsPayload(t *testing.T) {
	decoder := newTestDecoder("[Interface]\nPrivateKey = AAAA", nil)

	payload, err := decoder.Decode(context.Background(), "code.png")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if payload != "[Interface]\nPrivateKey = AAAA" {
		t.Errorf("unexpected payload %q", payload)
	}
}

func TestDecoder_Decode_BinaryMissing(t *testing.T) {
	decoder := newTestDecoder("", nil)
	decoder.available = func(string) bool { return false }

	_, err := decoder.Decode(context.Background(), "code.png")

	if !errors.Is(err, ErrDecoderUnavailable) {
		t.Errorf("expected ErrDecoderUnavailable, got %v", err)
	}
}

func TestDecoder_Decode_EmptyPayload(t *testing.T) {
	decoder := newTestDecoder("   \n", nil)

	_, err := decoder.Decode(context.Background(), "code.png")

	if !errors.Is(err, ErrNoPayload) {
		t.Errorf("expected ErrNoPayload, got %v", err)
	}
}

func TestDecoder_Decode_NoSymbolExit(t *testing.T) {
	decoder := newTestDecoder("", errors.New("command failed: exit status 4"))

	_, err := decoder.Decode(context.Background(), "code.png")

	if !errors.Is(err, ErrNoPayload) {
		t.Errorf("expected ErrNoPayload, got %v", err)
	}
}

func TestDecoder_Decode_Timeout(t *testing.T) {
	decoder := newTestDecoder("", fmt.Errorf("%w: zbarimg", terminal.ErrTimeout))

	_, err := decoder.Decode(context.Background(), "code.png")

	if !errors.Is(err, terminal.ErrTimeout) {
		t.Errorf("expected timeout error, got %v", err)
	}

	if errors.Is(err, ErrNoPayload) {
		t.Error("timeout must not be reported as a missing payload")
	}
}
