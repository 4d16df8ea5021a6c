// Package config assembles the server configuration from environment
// variables. There is no config file: the server is spawned by MCP hosts
// that pass settings through the environment.
package config

import (
	"log/slog"
	"time"

	"github.com/editkit/resolve-mcp/common/environment"
)

// Config holds every runtime setting of the server.
type Config struct {
	// SimulationMode forces the in-memory backend even when an editor is
	// reachable.
	SimulationMode bool
	// FallbackSimulation falls back to the simulation when the editor
	// cannot be reached at startup.
	FallbackSimulation bool
	// ScriptPath locates the bridge script used by the live backend.
	ScriptPath string
	// PythonBin is the interpreter used to run the bridge script.
	PythonBin string
	// ConnectTimeout bounds the live backend's startup handshake.
	ConnectTimeout time.Duration
	// CallTimeout bounds each live tool call.
	CallTimeout time.Duration
	// LogLevel is one of debug, info, warn, error.
	LogLevel slog.Level
	// LogJSON switches log output from text to JSON.
	LogJSON bool
}

// FromEnv reads the configuration from the environment, applying defaults
// for everything unset.
func FromEnv() Config {
	// Only the literal "true" selects simulation; any other value,
	// including "1" and "TRUE", selects live.
	simulation := environment.StringOr("DAVINCI_SIMULATION_MODE", "") == "true"
	return Config{
		SimulationMode:     simulation,
		FallbackSimulation: environment.BoolOr("DAVINCI_FALLBACK_SIMULATION", true),
		ScriptPath:         environment.StringOr("DAVINCI_SCRIPT_PATH", "resolve_bridge.py"),
		PythonBin:          environment.StringOr("DAVINCI_PYTHON_BIN", "python3"),
		ConnectTimeout:     environment.DurationOr("RESOLVE_MCP_CONNECT_TIMEOUT", 10*time.Second),
		CallTimeout:        environment.DurationOr("RESOLVE_MCP_CALL_TIMEOUT", 30*time.Second),
		LogLevel:           parseLevel(environment.StringOr("RESOLVE_MCP_LOG_LEVEL", "info")),
		LogJSON:            environment.StringOr("RESOLVE_MCP_LOG_FORMAT", "text") == "json",
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
