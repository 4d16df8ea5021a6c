package server_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/editkit/resolve-mcp/internal/resolve/registry"
	"github.com/editkit/resolve-mcp/internal/resolve/router"
	"github.com/editkit/resolve-mcp/internal/resolve/server"
	"github.com/editkit/resolve-mcp/internal/resolve/sim"
)

func newServer(t *testing.T) *server.Server {
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
	return server.New(router.New(reg, backend, log), "test")
}

// rpcResult round-trips one JSON-RPC message through the server and decodes
// the response envelope.
func rpcResult(t *testing.T, s *server.Server, msg string) (json.RawMessage, *rpcError) {
	t.Helper()
	resp := s.HandleMessage(context.Background(), json.RawMessage(msg))
	if resp == nil {
		t.Fatalf("no response for %s", msg)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  *rpcError       `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Result, envelope.Error
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const initializeMsg = `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`

func initialize(t *testing.T, s *server.Server) {
	t.Helper()
	result, rpcErr := rpcResult(t, s, initializeMsg)
	if rpcErr != nil {
		t.Fatalf("initialize error: %+v", rpcErr)
	}
	var init struct {
		ProtocolVersion string `json:"protocolVersion"`
		ServerInfo      struct {
			Name string `json:"name"`
		} `json:"serverInfo"`
	}
	if err := json.Unmarshal(result, &init); err != nil {
		t.Fatalf("decode initialize result: %v", err)
	}
	if init.ServerInfo.Name != "davinci-resolve-mcp" {
		t.Fatalf("server name = %q", init.ServerInfo.Name)
	}
}

func TestInitialize(t *testing.T) {
	initialize(t, newServer(t))
}

func TestListToolsExposesFullCatalog(t *testing.T) {
	s := newServer(t)
	initialize(t, s)
	result, rpcErr := rpcResult(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	if rpcErr != nil {
		t.Fatalf("tools/list error: %+v", rpcErr)
	}
	var list struct {
		Tools []struct {
			Name        string          `json:"name"`
			Description string          `json:"description"`
			InputSchema json.RawMessage `json:"inputSchema"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(result, &list); err != nil {
		t.Fatalf("decode tools/list: %v", err)
	}
	if len(list.Tools) != 120 {
		t.Fatalf("tool count = %d, want 120", len(list.Tools))
	}
	for _, tool := range list.Tools {
		if tool.Description == "" {
			t.Errorf("tool %q has no description", tool.Name)
		}
		if len(tool.InputSchema) == 0 {
			t.Errorf("tool %q has no input schema", tool.Name)
		}
	}
}

func callTool(t *testing.T, s *server.Server, id int, name string, args string) (string, bool) {
	t.Helper()
	msg := fmt.Sprintf(`{"jsonrpc":"2.0","id":%d,"method":"tools/call","params":{"name":%q,"arguments":%s}}`, id, name, args)
	result, rpcErr := rpcResult(t, s, msg)
	if rpcErr != nil {
		t.Fatalf("tools/call %s rpc error: %+v", name, rpcErr)
	}
	var call struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	}
	if err := json.Unmarshal(result, &call); err != nil {
		t.Fatalf("decode tools/call result: %v", err)
	}
	if len(call.Content) == 0 || call.Content[0].Type != "text" {
		t.Fatalf("unexpected content: %+v", call.Content)
	}
	return call.Content[0].Text, call.IsError
}

func TestCallToolSuccess(t *testing.T) {
	s := newServer(t)
	initialize(t, s)
	text, isError := callTool(t, s, 2, "create_timeline", `{"name":"T"}`)
	if isError {
		t.Fatalf("unexpected tool error: %q", text)
	}
	text, isError = callTool(t, s, 3, "list_timelines_tool", `{}`)
	if isError {
		t.Fatalf("unexpected tool error: %q", text)
	}
	if !strings.Contains(text, `"T"`) {
		t.Fatalf("list result %q does not mention T", text)
	}
}

func TestCallToolValidationFailure(t *testing.T) {
	s := newServer(t)
	initialize(t, s)
	text, isError := callTool(t, s, 2, "set_timeline_item_crop",
		`{"timeline_item_id":"item_1","crop_type":"Left","crop_value":2.0}`)
	if !isError {
		t.Fatalf("expected isError result, got %q", text)
	}
	if !strings.Contains(text, "crop_value") {
		t.Fatalf("error text %q does not name crop_value", text)
	}
}

func TestCallUnknownTool(t *testing.T) {
	s := newServer(t)
	initialize(t, s)
	text, isError := callTool(t, s, 2, "no_such_tool", `{}`)
	if !isError {
		t.Fatalf("expected isError result, got %q", text)
	}
	if !strings.Contains(text, "no_such_tool") {
		t.Fatalf("error text %q does not name the tool", text)
	}
}

func TestRenderScenario(t *testing.T) {
	s := newServer(t)
	initialize(t, s)
	for id := 2; id <= 4; id++ {
		text, isError := callTool(t, s, id, "add_to_render_queue", `{"preset_name":"H.264 1080p"}`)
		if isError {
			t.Fatalf("queue error: %q", text)
		}
	}
	if text, isError := callTool(t, s, 5, "start_render", `{}`); isError {
		t.Fatalf("start_render error: %q", text)
	}
	text, isError := callTool(t, s, 6, "get_render_status", `{}`)
	if isError {
		t.Fatalf("get_render_status error: %q", text)
	}
	if strings.Count(text, `"Completed"`) != 3 || !strings.Contains(text, `"progress":100`) {
		t.Fatalf("render status %q, want three completed jobs at 100", text)
	}
}
