// Package server exposes the tool catalog over the Model Context Protocol
// on stdio.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/editkit/resolve-mcp/internal/resolve/router"
)

const serverName = "davinci-resolve-mcp"

// maxLineBytes bounds a single inbound message, matching the live bridge.
const maxLineBytes = 1024 * 1024

const instructions = `Control DaVinci Resolve: projects, timelines, media pool, color grading,
timeline items, keyframes, rendering, and application state. Tool results
are plain text; getters return compact JSON.`

// Server wraps the MCP protocol machinery around the router. Tool-call
// failures of every kind, including calls to names not in the catalog,
// surface as tool results with isError set rather than protocol errors,
// so the model can read and react to them.
type Server struct {
	mcp *server.MCPServer
	r   *router.Router
}

// New builds the MCP server and registers every tool in the router's
// catalog with a shared dispatch handler.
func New(r *router.Router, version string) *Server {
	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	for _, tool := range r.Tools() {
		t := mcp.NewToolWithRawSchema(tool.Name, tool.Description, tool.Schema)
		s.AddTool(t, handle(r, tool.Name))
	}
	return &Server{mcp: s, r: r}
}

// handle adapts one routed tool to the MCP handler contract.
func handle(r *router.Router, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := r.Route(ctx, name, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

// HandleMessage processes one JSON-RPC message. Calls to tool names outside
// the catalog never reach the protocol library's per-tool dispatch, which
// would answer with a protocol error; they are routed anyway so the unknown
// name comes back as an isError tool result.
func (s *Server) HandleMessage(ctx context.Context, msg json.RawMessage) mcp.JSONRPCMessage {
	var call struct {
		ID     mcp.RequestId `json:"id"`
		Method string        `json:"method"`
		Params struct {
			Name      string         `json:"name"`
			Arguments map[string]any `json:"arguments"`
		} `json:"params"`
	}
	if err := json.Unmarshal(msg, &call); err == nil &&
		call.Method == "tools/call" && !call.ID.IsNil() &&
		!s.r.Known(call.Params.Name) {
		result := mcp.NewToolResultText("")
		if _, err := s.r.Route(ctx, call.Params.Name, call.Params.Arguments); err != nil {
			result = mcp.NewToolResultError(err.Error())
		}
		return mcp.JSONRPCResponse{
			JSONRPC: mcp.JSONRPC_VERSION,
			ID:      call.ID,
			Result:  result,
		}
	}
	return s.mcp.HandleMessage(ctx, msg)
}

// Serve reads newline-delimited JSON-RPC from stdin and writes responses to
// stdout until the client disconnects. Notifications produce no response.
func (s *Server) Serve() error {
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		resp := s.HandleMessage(ctx, json.RawMessage(line))
		if resp == nil {
			continue
		}
		data, err := json.Marshal(resp)
		if err != nil {
			return fmt.Errorf("marshal response: %w", err)
		}
		data = append(data, '\n')
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	return scanner.Err()
}
