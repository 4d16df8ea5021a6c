package live

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
)

// fakeBridge answers requests like the bridge script would, one JSON line
// per call.
func fakeBridge(t *testing.T, handle func(req request) response) *Backend {
	t.Helper()
	clientIn, serverOut := io.Pipe()
	serverIn, clientOut := io.Pipe()

	go func() {
		scanner := bufio.NewScanner(serverIn)
		for scanner.Scan() {
			var req request
			if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
				continue
			}
			resp := handle(req)
			resp.JSONRPC = "2.0"
			resp.ID = req.ID
			data, _ := json.Marshal(resp)
			serverOut.Write(append(data, '\n'))
		}
	}()

	b := New(Options{CallTimeout: time.Second})
	b.c = newPipeClient(clientOut, clientIn)
	t.Cleanup(func() { _ = b.Shutdown(context.Background()) })
	return b
}

func textResult(s string) json.RawMessage {
	data, _ := json.Marshal(s)
	return data
}

func TestCallReturnsText(t *testing.T) {
	b := fakeBridge(t, func(req request) response {
		if req.Method != "create_project" {
			t.Errorf("method = %q", req.Method)
		}
		if req.Params["name"] != "Feature" {
			t.Errorf("params = %v", req.Params)
		}
		return response{Result: textResult("Successfully created project 'Feature'")}
	})
	out, err := b.Call(context.Background(), "create_project", map[string]any{"name": "Feature"})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if out != "Successfully created project 'Feature'" {
		t.Fatalf("out = %q", out)
	}
}

func TestCallTranslatesRemoteErrors(t *testing.T) {
	tests := []struct {
		name string
		code int
		want bridge.Kind
	}{
		{"invalid params", -32602, bridge.KindInvalidParameter},
		{"invalid request", -32600, bridge.KindNotRunning},
		{"internal", -32603, bridge.KindInternal},
		{"bridge closed", -32000, bridge.KindNotRunning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fakeBridge(t, func(req request) response {
				return response{Error: &responseError{Code: tt.code, Message: tt.name}}
			})
			_, err := b.Call(context.Background(), "save_project", nil)
			if bridge.KindOf(err) != tt.want {
				t.Fatalf("kind = %v, want %v", bridge.KindOf(err), tt.want)
			}
		})
	}
}

func TestCallTimesOut(t *testing.T) {
	b := fakeBridge(t, func(req request) response {
		time.Sleep(5 * time.Second)
		return response{Result: textResult("too late")}
	})
	b.opts.CallTimeout = 50 * time.Millisecond
	_, err := b.Call(context.Background(), "save_project", nil)
	if bridge.KindOf(err) != bridge.KindTimeout {
		t.Fatalf("kind = %v, want Timeout", bridge.KindOf(err))
	}
	if !strings.Contains(err.Error(), "save_project") {
		t.Fatalf("error = %q, want it to name the tool", err)
	}
}

func TestCallWithoutConnection(t *testing.T) {
	b := New(Options{})
	_, err := b.Call(context.Background(), "save_project", nil)
	if bridge.KindOf(err) != bridge.KindNotRunning {
		t.Fatalf("kind = %v, want NotRunning", bridge.KindOf(err))
	}
}

func TestNonStringResultPassesThrough(t *testing.T) {
	b := fakeBridge(t, func(req request) response {
		return response{Result: json.RawMessage(`{"jobs":[]}`)}
	})
	out, err := b.Call(context.Background(), "get_render_status", nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if out != `{"jobs":[]}` {
		t.Fatalf("out = %q", out)
	}
}
