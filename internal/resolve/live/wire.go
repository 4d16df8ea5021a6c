// Package live drives a running DaVinci Resolve instance through a helper
// bridge script spawned as a subprocess. The two sides speak
// newline-delimited JSON-RPC 2.0 over the script's stdin/stdout: the method
// is the tool name, the params are the tool arguments, and the result is the
// tool's text output.
package live

import "encoding/json"

type request struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      int64          `json:"id"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params,omitempty"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *responseError  `json:"error,omitempty"`
}

type responseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *responseError) Error() string { return e.Message }

// pingMethod is answered by the bridge script as soon as it has attached to
// the Resolve scripting API. It doubles as the connection handshake.
const pingMethod = "ping"
