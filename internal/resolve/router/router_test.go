package router_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
	"github.com/editkit/resolve-mcp/internal/resolve/registry"
	"github.com/editkit/resolve-mcp/internal/resolve/router"
	"github.com/editkit/resolve-mcp/internal/resolve/sim"
)

func newRouter(t *testing.T) *router.Router {
	t.Helper()
	reg, err := registry.New()
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	backend := sim.New()
	if err := backend.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return router.New(reg, backend, log)
}

func TestRouteDispatchesToBackend(t *testing.T) {
	r := newRouter(t)
	out, err := r.Route(context.Background(), "create_project", map[string]any{"name": "Feature"})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if !strings.Contains(out, "Feature") {
		t.Fatalf("out = %q", out)
	}
}

func TestRouteUnknownTool(t *testing.T) {
	r := newRouter(t)
	_, err := r.Route(context.Background(), "no_such_tool", nil)
	if bridge.KindOf(err) != bridge.KindNotFound {
		t.Fatalf("kind = %v, want NotFound", bridge.KindOf(err))
	}
	if !strings.Contains(err.Error(), "no_such_tool") {
		t.Fatalf("error = %q, want it to name the tool", err)
	}
}

func TestRouteRejectsInvalidArgumentsBeforeBackend(t *testing.T) {
	r := newRouter(t)
	_, err := r.Route(context.Background(), "set_timeline_item_crop", map[string]any{
		"timeline_item_id": "item_1",
		"crop_type":        "Left",
		"crop_value":       2.0,
	})
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Fatalf("kind = %v, want InvalidParameter", bridge.KindOf(err))
	}
	if !strings.Contains(err.Error(), "crop_value") {
		t.Fatalf("error = %q, want it to name crop_value", err)
	}
}

func TestRouteRejectsMissingRequiredField(t *testing.T) {
	r := newRouter(t)
	_, err := r.Route(context.Background(), "create_project", nil)
	if bridge.KindOf(err) != bridge.KindInvalidParameter {
		t.Fatalf("kind = %v, want InvalidParameter", bridge.KindOf(err))
	}
}

func TestRouteAppliesDefaults(t *testing.T) {
	r := newRouter(t)
	if _, err := r.Route(context.Background(), "add_marker", map[string]any{"frame": 10}); err != nil {
		t.Fatalf("Route: %v", err)
	}
	out, err := r.Route(context.Background(), "get_timeline_markers", nil)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if !strings.Contains(out, `"Blue"`) {
		t.Fatalf("markers = %q, want the default Blue color", out)
	}
}
