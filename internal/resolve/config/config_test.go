package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/editkit/resolve-mcp/internal/resolve/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.FromEnv()
	if cfg.SimulationMode {
		t.Error("SimulationMode default should be false")
	}
	if !cfg.FallbackSimulation {
		t.Error("FallbackSimulation default should be true")
	}
	if cfg.ScriptPath != "resolve_bridge.py" {
		t.Errorf("ScriptPath = %q", cfg.ScriptPath)
	}
	if cfg.PythonBin != "python3" {
		t.Errorf("PythonBin = %q", cfg.PythonBin)
	}
	if cfg.ConnectTimeout != 10*time.Second || cfg.CallTimeout != 30*time.Second {
		t.Errorf("timeouts = %v / %v", cfg.ConnectTimeout, cfg.CallTimeout)
	}
	if cfg.LogLevel != slog.LevelInfo || cfg.LogJSON {
		t.Errorf("log settings = %v json=%v", cfg.LogLevel, cfg.LogJSON)
	}
}

func TestSimulationModeRequiresLiteralTrue(t *testing.T) {
	for _, v := range []string{"1", "t", "TRUE", "True", "yes"} {
		t.Setenv("DAVINCI_SIMULATION_MODE", v)
		if config.FromEnv().SimulationMode {
			t.Errorf("SimulationMode accepted %q, want literal \"true\" only", v)
		}
	}
	t.Setenv("DAVINCI_SIMULATION_MODE", "true")
	if !config.FromEnv().SimulationMode {
		t.Error("SimulationMode should be true for literal \"true\"")
	}
}

func TestOverrides(t *testing.T) {
	t.Setenv("DAVINCI_SIMULATION_MODE", "true")
	t.Setenv("DAVINCI_FALLBACK_SIMULATION", "false")
	t.Setenv("DAVINCI_SCRIPT_PATH", "/opt/bridge.py")
	t.Setenv("RESOLVE_MCP_CALL_TIMEOUT", "5s")
	t.Setenv("RESOLVE_MCP_LOG_LEVEL", "debug")
	t.Setenv("RESOLVE_MCP_LOG_FORMAT", "json")

	cfg := config.FromEnv()
	if !cfg.SimulationMode {
		t.Error("SimulationMode should be true")
	}
	if cfg.FallbackSimulation {
		t.Error("FallbackSimulation should be false")
	}
	if cfg.ScriptPath != "/opt/bridge.py" {
		t.Errorf("ScriptPath = %q", cfg.ScriptPath)
	}
	if cfg.CallTimeout != 5*time.Second {
		t.Errorf("CallTimeout = %v", cfg.CallTimeout)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if !cfg.LogJSON {
		t.Error("LogJSON should be true")
	}
}
