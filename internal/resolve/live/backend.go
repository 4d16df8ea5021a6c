package live

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

// Options configures the live backend.
type Options struct {
	// PythonBin is the interpreter used to run the bridge script.
	PythonBin string
	// ScriptPath locates the bridge script.
	ScriptPath string
	// ConnectTimeout bounds the spawn-and-ping handshake.
	ConnectTimeout time.Duration
	// CallTimeout bounds each tool call when the caller's context carries
	// no earlier deadline.
	CallTimeout time.Duration
}

// Backend executes tool calls against a running editor via the bridge
// script. It satisfies bridge.Backend.
type Backend struct {
	opts Options

	mu sync.Mutex
	c  *client
}

// New builds a live backend. Initialize spawns the bridge and performs the
// handshake.
func New(opts Options) *Backend {
	if opts.PythonBin == "" {
		opts.PythonBin = "python3"
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 10 * time.Second
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 30 * time.Second
	}
	return &Backend{opts: opts}
}

// Initialize spawns the bridge script and pings it. Failure means the
// editor is not reachable; the caller decides whether to fall back to the
// simulation.
func (b *Backend) Initialize(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.c != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, b.opts.ConnectTimeout)
	defer cancel()

	c, err := spawn(ctx, b.opts.PythonBin, b.opts.ScriptPath)
	if err != nil {
		return bridge.NotRunningf("spawn bridge script %q: %v", b.opts.ScriptPath, err)
	}
	if _, err := c.call(ctx, pingMethod, nil); err != nil {
		c.close()
		return bridge.NotRunningf("bridge handshake failed: %v", err)
	}
	slog.Info("connected to editor bridge", "script", b.opts.ScriptPath)
	b.c = c
	return nil
}

// Connected reports whether the bridge process is attached.
func (b *Backend) Connected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.c != nil
}

// Call forwards one tool invocation to the bridge and reconstructs the
// error taxonomy from the remote error code.
func (b *Backend) Call(ctx context.Context, tool string, args map[string]any) (string, error) {
	b.mu.Lock()
	c := b.c
	b.mu.Unlock()
	if c == nil {
		return "", bridge.NotRunning()
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.opts.CallTimeout)
		defer cancel()
	}

	raw, err := c.call(ctx, tool, args)
	if err != nil {
		return "", b.translate(tool, err)
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		// Non-string results are passed through as raw JSON.
		return strings.TrimSpace(string(raw)), nil
	}
	return text, nil
}

func (b *Backend) translate(tool string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return bridge.Timeoutf("tool %q timed out after %s", tool, b.opts.CallTimeout)
	}
	var rpcErr *responseError
	if errors.As(err, &rpcErr) {
		if rpcErr.Code == -32000 {
			return bridge.NotRunningf("%s", rpcErr.Message)
		}
		return bridge.FromRPC(rpcErr.Code, rpcErr.Message)
	}
	return bridge.Internalf("bridge call %q: %v", tool, err)
}

// Shutdown terminates the bridge process.
func (b *Backend) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.c == nil {
		return nil
	}
	err := b.c.close()
	b.c = nil
	return err
}
