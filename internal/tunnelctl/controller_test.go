package tunnelctl

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"wgdesk/internal/terminal"
)

func newTestController(runErr error) (*Controller, *[]string) {
	var invocations []string

	controller := NewController("wg-quick", time.Second)
	controller.available = func(string) bool { return true }
	controller.run = func(ctx context.Context, binary string, timeout time.Duration, args ...string) (string, error) {
		invocations = append(invocations, fmt.Sprintf("%s %s %s", binary, args[0], args[1]))
		return "", runErr
	}

	return controller, &invocations
}

func TestController_Up(t *testing.T) {
	controller, invocations := newTestController(nil)

	if err := controller.Up(context.Background(), "home"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(*invocations) != 1 || (*invocations)[0] != "wg-quick up home" {
		t.Errorf("unexpected invocations %v", *invocations)
	}
}

func TestController_Down(t *testing.T) {
	controller, invocations := newTestController(nil)

	if err := controller.Down(context.Background(), "home"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(*invocations) != 1 || (*invocations)[0] != "wg-quick down home" {
		t.Errorf("unexpected invocations %v", *invocations)
	}
}

func TestController_Up_NonZeroExit(t *testing.T) {
	controller, _ := newTestController(errors.New("command failed: exit status 1"))

	err := controller.Up(context.Background(), "home")

	if !errors.Is(err, ErrActivationFailed) {
		t.Errorf("expected ErrActivationFailed, got %v", err)
	}
}

func TestController_Down_NonZeroExit(t *testing.T) {
	controller, _ := newTestController(errors.New("command failed: exit status 1"))

	err := controller.Down(context.Background(), "home")

	if !errors.Is(err, ErrDeactivationFailed) {
		t.Errorf("expected ErrDeactivationFailed, got %v", err)
	}
}

func TestController_Up_TimeoutKeepsBothCauses(t *testing.T) {
	controller, _ := newTestController(fmt.Errorf("%w: wg-quick", terminal.ErrTimeout))

	err := controller.Up(context.Background(), "home")

	if !errors.Is(err, ErrActivationFailed) {
		t.Errorf("expected ErrActivationFailed, got %v", err)
	}

	if !errors.Is(err, terminal.ErrTimeout) {
		t.Errorf("expected underlying timeout to remain detectable, got %v", err)
	}
}

func TestController_BinaryMissing(t *testing.T) {
	controller, invocations := newTestController(nil)
	controller.available = func(string) bool { return false }

	if err := controller.Up(context.Background(), "home"); !errors.Is(err, ErrControllerUnavailable) {
		t.Errorf("expected ErrControllerUnavailable, got %v", err)
	}

	if err := controller.Down(context.Background(), "home"); !errors.Is(err, ErrControllerUnavailable) {
		t.Errorf("expected ErrControllerUnavailable, got %v", err)
	}

	if len(*invocations) != 0 {
		t.Error("expected no tool invocation when the binary is absent")
	}
}
