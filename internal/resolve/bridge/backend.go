package bridge

import "context"

// Backend executes tool calls against an editor, real or simulated.
//
// Call receives arguments that already passed schema validation and default
// filling, but backends re-check semantics (ranges, enums, entity existence)
// so they stay safe to use without the router in front of them. The returned
// string is the human-readable result delivered to the protocol client; the
// returned error always carries a taxonomy Kind.
type Backend interface {
	// Initialize prepares the backend for calls. For the live backend this
	// spawns the host bridge and performs its handshake.
	Initialize(ctx context.Context) error

	// Connected reports whether the backend is ready to accept calls.
	Connected() bool

	// Call executes a single named tool.
	Call(ctx context.Context, tool string, args map[string]any) (string, error)

	// Shutdown releases backend resources. Safe to call more than once.
	Shutdown(ctx context.Context) error
}
