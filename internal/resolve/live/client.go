package live

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"
	"sync/atomic"
)

// client communicates with a single bridge script process over stdin/stdout
// using JSON-RPC 2.0 (newline-delimited).
type client struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	mu     sync.Mutex
	nextID atomic.Int64

	pending map[int64]chan *response
	pendMu  sync.Mutex
}

// spawn starts the bridge script and begins reading its responses. It does
// not wait for the script to attach to Resolve; callers follow up with a
// ping call.
func spawn(ctx context.Context, python, script string) (*client, error) {
	cmd := exec.CommandContext(ctx, python, script)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, fmt.Errorf("start bridge script: %w", err)
	}

	c := newPipeClient(stdin, stdout)
	c.cmd = cmd
	return c, nil
}

// newPipeClient builds a client over explicit pipes. Tests connect it to an
// in-process fake bridge.
func newPipeClient(stdin io.WriteCloser, stdout io.Reader) *client {
	c := &client{
		stdin:   stdin,
		pending: make(map[int64]chan *response),
	}
	go c.readLoop(stdout)
	return c
}

// call sends one request and waits for its response or context expiry. The
// returned error is either the remote *responseError or a transport error.
func (c *client) call(ctx context.Context, method string, params map[string]any) (json.RawMessage, error) {
	id := c.nextID.Add(1)
	data, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	ch := make(chan *response, 1)
	c.pendMu.Lock()
	c.pending[id] = ch
	c.pendMu.Unlock()

	c.mu.Lock()
	_, err = fmt.Fprintf(c.stdin, "%s\n", data)
	c.mu.Unlock()
	if err != nil {
		c.pendMu.Lock()
		delete(c.pending, id)
		c.pendMu.Unlock()
		return nil, fmt.Errorf("write request: %w", err)
	}

	select {
	case <-ctx.Done():
		c.pendMu.Lock()
		delete(c.pending, id)
		c.pendMu.Unlock()
		return nil, ctx.Err()
	case resp := <-ch:
		if resp.Error != nil {
			return nil, resp.Error
		}
		return resp.Result, nil
	}
}

// close shuts down the bridge process.
func (c *client) close() error {
	c.stdin.Close()
	if c.cmd == nil {
		return nil
	}
	return c.cmd.Wait()
}

func (c *client) readLoop(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1<<20), 1<<20) // 1MB per line
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var resp response
		if err := json.Unmarshal(line, &resp); err != nil {
			slog.Warn("bridge: failed to parse response", "err", err)
			continue
		}
		c.pendMu.Lock()
		ch, ok := c.pending[resp.ID]
		if ok {
			delete(c.pending, resp.ID)
		}
		c.pendMu.Unlock()
		if ok {
			ch <- &resp
		}
	}
	// Drain pending requests on EOF.
	c.pendMu.Lock()
	for id, ch := range c.pending {
		ch <- &response{ID: id, Error: &responseError{Code: -32000, Message: "bridge process closed"}}
	}
	c.pending = make(map[int64]chan *response)
	c.pendMu.Unlock()
}
