package sim

import (
	"context"
	"sync"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

// handler executes one tool against the state. The Backend's mutex is held
// for the whole call, so handlers read and write state freely but must not
// block.
type handler func(args map[string]any) (string, error)

// Backend is the in-memory simulation of the editor. It satisfies
// bridge.Backend and is safe for concurrent use.
type Backend struct {
	mu       sync.Mutex
	st       *state
	dispatch map[string]handler
	ready    bool
}

// New builds a simulation backend. Initialize must run before Call.
func New() *Backend {
	b := &Backend{}
	b.dispatch = make(map[string]handler)
	b.registerProject(b.dispatch)
	b.registerTimeline(b.dispatch)
	b.registerMedia(b.dispatch)
	b.registerColor(b.dispatch)
	b.registerItem(b.dispatch)
	b.registerKeyframe(b.dispatch)
	b.registerRender(b.dispatch)
	b.registerSystem(b.dispatch)
	return b
}

// Initialize seeds the default state. Calling it again resets the session.
func (b *Backend) Initialize(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	st, err := newState()
	if err != nil {
		return err
	}
	b.st = st
	b.ready = true
	return nil
}

// Connected reports whether Initialize has run. The simulation never loses
// its connection afterwards.
func (b *Backend) Connected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ready
}

// Call dispatches one tool invocation. Handlers validate all arguments
// before touching state, so a failed call leaves the state unchanged.
func (b *Backend) Call(ctx context.Context, tool string, args map[string]any) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.ready {
		return "", bridge.NotRunning()
	}
	h, ok := b.dispatch[tool]
	if !ok {
		return "", bridge.NotFoundf("unknown tool %q", tool)
	}
	if args == nil {
		args = map[string]any{}
	}
	return h(args)
}

// Shutdown discards the session state.
func (b *Backend) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.st = nil
	b.ready = false
	return nil
}
