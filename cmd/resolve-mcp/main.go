// Resolve-mcp is an MCP server that exposes DaVinci Resolve's scripting
// surface as tool calls over stdio.
//
// All configuration is loaded from environment variables. On startup the
// server connects to a running Resolve instance through the bridge script;
// when Resolve is not reachable it falls back to the built-in simulation
// unless the fallback is disabled.
//
// Optional environment variables:
//
//	DAVINCI_SIMULATION_MODE      - "true" forces the simulation backend (default: "false")
//	DAVINCI_FALLBACK_SIMULATION  - fall back to simulation when Resolve is unreachable (default: "true")
//	DAVINCI_SCRIPT_PATH          - path to the bridge script (default: "resolve_bridge.py")
//	DAVINCI_PYTHON_BIN           - interpreter for the bridge script (default: "python3")
//	RESOLVE_MCP_CONNECT_TIMEOUT  - startup handshake timeout (default: "10s")
//	RESOLVE_MCP_CALL_TIMEOUT     - per-call timeout for live calls (default: "30s")
//	RESOLVE_MCP_LOG_LEVEL        - "debug", "info", "warn", "error" (default: "info")
//	RESOLVE_MCP_LOG_FORMAT       - "text" or "json" (default: "text")
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/editkit/resolve-mcp/common/version"
	"github.com/editkit/resolve-mcp/internal/resolve/bridge"
	"github.com/editkit/resolve-mcp/internal/resolve/config"
	"github.com/editkit/resolve-mcp/internal/resolve/live"
	"github.com/editkit/resolve-mcp/internal/resolve/registry"
	"github.com/editkit/resolve-mcp/internal/resolve/router"
	"github.com/editkit/resolve-mcp/internal/resolve/server"
	"github.com/editkit/resolve-mcp/internal/resolve/sim"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()
	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg := config.FromEnv()
	setupLogging(cfg)

	reg, err := registry.New()
	if err != nil {
		slog.Error("failed to build tool catalog", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	backend, err := selectBackend(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize backend", "err", err)
		os.Exit(1)
	}
	defer backend.Shutdown(ctx)

	r := router.New(reg, backend, slog.Default())
	s := server.New(r, version.Version)

	slog.Info("serving", "tools", reg.Len(), "version", version.Version)
	if err := s.Serve(); err != nil {
		slog.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

// selectBackend picks and initializes the backend: simulation when forced,
// otherwise live with an optional simulation fallback.
func selectBackend(ctx context.Context, cfg config.Config) (bridge.Backend, error) {
	if cfg.SimulationMode {
		slog.Info("simulation mode forced")
		return initSim(ctx)
	}

	lb := live.New(live.Options{
		PythonBin:      cfg.PythonBin,
		ScriptPath:     cfg.ScriptPath,
		ConnectTimeout: cfg.ConnectTimeout,
		CallTimeout:    cfg.CallTimeout,
	})
	err := lb.Initialize(ctx)
	if err == nil {
		return lb, nil
	}
	if !cfg.FallbackSimulation {
		return nil, err
	}
	slog.Warn("DaVinci Resolve unreachable, falling back to simulation", "err", err)
	return initSim(ctx)
}

func initSim(ctx context.Context) (bridge.Backend, error) {
	b := sim.New()
	if err := b.Initialize(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

func setupLogging(cfg config.Config) {
	// Stdout carries the MCP protocol; all logging goes to stderr.
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
