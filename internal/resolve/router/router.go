// Package router dispatches validated tool calls to a backend. It is the
// single choke point between the protocol surface and the backends: every
// call is schema-validated, default-filled, and logged here.
package router

import (
	"context"
	"log/slog"
	"time"

	"github.com/editkit/resolve-mcp/common/trace"
	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
	"github.com/editkit/resolve-mcp/internal/resolve/registry"
)

// Router routes tool calls through validation to a backend.
type Router struct {
	reg     *registry.Registry
	backend bridge.Backend
	log     *slog.Logger
}

// New builds a router over the given catalog and backend.
func New(reg *registry.Registry, backend bridge.Backend, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	return &Router{reg: reg, backend: backend, log: log}
}

// Backend exposes the routed backend, e.g. for lifecycle management.
func (r *Router) Backend() bridge.Backend {
	return r.backend
}

// Tools lists the catalog in registration order.
func (r *Router) Tools() []*registry.Tool {
	return r.reg.All()
}

// Known reports whether name is in the catalog.
func (r *Router) Known(name string) bool {
	_, ok := r.reg.Lookup(name)
	return ok
}

// Route executes one tool call: resolve the tool, validate the arguments
// against its schema, fill defaults, and dispatch to the backend. The
// returned error always carries a bridge.Kind.
func (r *Router) Route(ctx context.Context, name string, args map[string]any) (string, error) {
	traceID := trace.GenerateID()
	ctx = trace.WithTraceID(ctx, traceID)
	log := r.log.With("trace_id", traceID, "tool", name)

	tool, ok := r.reg.Lookup(name)
	if !ok {
		log.Warn("tool call rejected", "reason", "unknown tool")
		return "", bridge.NotFoundf("unknown tool %q", name)
	}
	if err := tool.Validate(args); err != nil {
		log.Warn("tool call rejected", "reason", "schema validation", "err", err)
		return "", err
	}
	args = tool.ApplyDefaults(args)

	start := time.Now()
	out, err := r.backend.Call(ctx, name, args)
	elapsed := time.Since(start)
	if err != nil {
		log.Warn("tool call failed",
			"kind", bridge.KindOf(err).String(),
			"duration", elapsed,
			"err", err,
		)
		return "", err
	}
	log.Info("tool call completed", "duration", elapsed)
	return out, nil
}
