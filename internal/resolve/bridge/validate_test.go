package bridge_test

import (
	"testing"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

func TestClampWheelValue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{1.5, 1.0},
		{-2.0, -1.0},
		{-1.0, -1.0},
		{1.0, 1.0},
	}
	for _, tt := range tests {
		if got := bridge.ClampWheelValue(tt.in); got != tt.want {
			t.Errorf("ClampWheelValue(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestCheckRange(t *testing.T) {
	if err := bridge.CheckRange("opacity", 50, 0, 100); err != nil {
		t.Errorf("in-range value rejected: %v", err)
	}
	err := bridge.CheckRange("crop_value", 1.5, 0, 1)
	if err == nil {
		t.Fatal("out-of-range value accepted")
	}
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Errorf("kind = %v, want invalid_parameter", bridge.KindOf(err))
	}
}

func TestCheckSpeed(t *testing.T) {
	if err := bridge.CheckSpeed("speed", 2.0); err != nil {
		t.Errorf("valid speed rejected: %v", err)
	}
	for _, v := range []float64{0, -1, 10.5} {
		if err := bridge.CheckSpeed("speed", v); err == nil {
			t.Errorf("speed %g accepted", v)
		}
	}
}

func TestCheckEnum(t *testing.T) {
	if err := bridge.CheckEnum("page", "color", bridge.Pages); err != nil {
		t.Errorf("valid page rejected: %v", err)
	}
	if err := bridge.CheckEnum("page", "grading", bridge.Pages); err == nil {
		t.Error("unknown page accepted")
	}
}

func TestCheckNonEmpty(t *testing.T) {
	if err := bridge.CheckNonEmpty("name", "Timeline 1"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	for _, v := range []string{"", "   "} {
		if err := bridge.CheckNonEmpty("name", v); err == nil {
			t.Errorf("name %q accepted", v)
		}
	}
}
