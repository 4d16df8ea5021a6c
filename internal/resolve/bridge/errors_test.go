package bridge_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

func TestKindClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind bridge.Kind
		code int
	}{
		{"not running", bridge.NotRunning(), bridge.KindNotRunning, -32600},
		{"invalid parameter", bridge.InvalidParameterf("frame", "must be >= 0"), bridge.KindInvalidParameter, -32602},
		{"not found", bridge.NotFoundf("project %q not found", "Doc"), bridge.KindNotFound, -32602},
		{"not supported", bridge.NotSupportedf("live only"), bridge.KindNotSupported, -32603},
		{"timeout", bridge.Timeoutf("call exceeded %s", "30s"), bridge.KindTimeout, -32603},
		{"permission denied", bridge.PermissionDeniedf("host refused %s", "quit_app"), bridge.KindPermissionDenied, -32603},
		{"internal", bridge.Internalf("state corrupt"), bridge.KindInternal, -32603},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bridge.KindOf(tt.err); got != tt.kind {
				t.Errorf("KindOf = %v, want %v", got, tt.kind)
			}
			if got := bridge.RPCCode(tt.err); got != tt.code {
				t.Errorf("RPCCode = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestForeignErrorsAreInternal(t *testing.T) {
	err := errors.New("plain")
	if got := bridge.KindOf(err); got != bridge.KindInternal {
		t.Errorf("KindOf(plain) = %v, want internal", got)
	}
	wrapped := fmt.Errorf("outer: %w", bridge.NotFoundf("gone"))
	if got := bridge.KindOf(wrapped); got != bridge.KindNotFound {
		t.Errorf("KindOf(wrapped) = %v, want not_found", got)
	}
}

func TestInvalidParameterNamesTheField(t *testing.T) {
	err := bridge.InvalidParameterf("crop_value", "value %g out of range", 1.5)
	if !strings.HasPrefix(err.Error(), `invalid parameter "crop_value"`) {
		t.Errorf("message %q does not name the field first", err.Error())
	}
}

func TestFromRPC(t *testing.T) {
	tests := []struct {
		code int
		kind bridge.Kind
	}{
		{-32602, bridge.KindInvalidParameter},
		{-32600, bridge.KindNotRunning},
		{-32603, bridge.KindInternal},
		{-32000, bridge.KindInternal},
	}
	for _, tt := range tests {
		err := bridge.FromRPC(tt.code, "remote failure")
		if got := bridge.KindOf(err); got != tt.kind {
			t.Errorf("FromRPC(%d) kind = %v, want %v", tt.code, got, tt.kind)
		}
	}
}
