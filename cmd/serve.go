package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"twodo-mcp/internal/instrumentation"
	"twodo-mcp/internal/launcher"
	"twodo-mcp/internal/server"
	"twodo-mcp/internal/tools/twodo_tools"
	"twodo-mcp/internal/twodo"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode bool
		transport string
		httpAddr  string
		// 2Do protocol timing
		twodoURL         string
		launchTimeout    time.Duration
		clipboardTimeout time.Duration
		clipboardSettle  time.Duration
		batchDelay       time.Duration
		// Metrics server configuration
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server exposing the 2Do
task manager tools for AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport

2Do Bridge:
  The server drives the 2Do app through its twodo:// URL scheme using the
  macOS 'open' command, and reads new task UIDs back from the clipboard
  via 'pbpaste'. 2Do must be installed and its URL scheme enabled
  (Preferences > Advanced) on the machine the server runs on.

Timing:
  The URL scheme gives no completion signal, so the clipboard settle delay
  and batch delay are fixed pauses. Raise them on slow machines if UID
  capture misses or batch items get dropped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags win; the environment fills in anything left at its default.
			if !cmd.Flags().Changed("twodo-url") {
				twodoURL = envOr("TWODO_BASE_URL", twodoURL)
			}
			if !cmd.Flags().Changed("launch-timeout") {
				launchTimeout = envDuration("TWODO_LAUNCH_TIMEOUT", launchTimeout)
			}
			if !cmd.Flags().Changed("clipboard-timeout") {
				clipboardTimeout = envDuration("TWODO_CLIPBOARD_TIMEOUT", clipboardTimeout)
			}
			if !cmd.Flags().Changed("clipboard-settle") {
				clipboardSettle = envDuration("TWODO_CLIPBOARD_SETTLE", clipboardSettle)
			}
			if !cmd.Flags().Changed("batch-delay") {
				batchDelay = envDuration("TWODO_BATCH_DELAY", batchDelay)
			}
			if !cmd.Flags().Changed("metrics-enabled") {
				metricsEnabled = envBool("METRICS_ENABLED", metricsEnabled)
			}
			if !cmd.Flags().Changed("metrics-addr") {
				metricsAddr = envOr("METRICS_ADDR", metricsAddr)
			}

			twodoCfg := twodo.Config{
				BaseURL:          twodoURL,
				LaunchTimeout:    launchTimeout,
				ClipboardTimeout: clipboardTimeout,
				ClipboardSettle:  clipboardSettle,
				BatchDelay:       batchDelay,
			}

			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}

			return runServe(transport, debugMode, httpAddr, twodoCfg, metricsConfig)
		},
	}

	defaults := twodo.DefaultConfig()

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for streamable-http transport)")

	cmd.Flags().StringVar(&twodoURL, "twodo-url", defaults.BaseURL, "Base URL of 2Do's x-callback-url scheme. Can also use TWODO_BASE_URL env var.")
	cmd.Flags().DurationVar(&launchTimeout, "launch-timeout", defaults.LaunchTimeout, "Timeout for a single URI launch. Can also use TWODO_LAUNCH_TIMEOUT env var.")
	cmd.Flags().DurationVar(&clipboardTimeout, "clipboard-timeout", defaults.ClipboardTimeout, "Timeout for a single clipboard read. Can also use TWODO_CLIPBOARD_TIMEOUT env var.")
	cmd.Flags().DurationVar(&clipboardSettle, "clipboard-settle", defaults.ClipboardSettle, "Delay after a launch before trusting the clipboard. Can also use TWODO_CLIPBOARD_SETTLE env var.")
	cmd.Flags().DurationVar(&batchDelay, "batch-delay", defaults.BatchDelay, "Pause between consecutive batch launches. Can also use TWODO_BATCH_DELAY env var.")

	// Metrics server flags
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(transport string, debugMode bool, httpAddr string, twodoCfg twodo.Config, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logs go to stderr so the stdio transport's stdout stays clean.
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			if transport != "stdio" {
				log.Printf("Error during instrumentation shutdown: %v", err)
			}
		}
	}()

	// Create the 2Do client and the server context around it
	twodoClient := twodo.NewClient(twodoCfg, launcher.NewOpenCommand(), launcher.NewPasteboard(), slog.Default())

	serverContext, err := server.NewServerContext(shutdownCtx, twodoClient)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}

	// Set metrics and audit logger on server context for tool instrumentation
	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
		serverContext.SetAuditLogger(instrumentation.NewAuditLoggerWithConfig(nil, instrConfig.AuditLogging))
	}

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if transport != "stdio" && metricsConfig.Enabled && provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			Enabled:                 true,
			InstrumentationProvider: provider,
			HealthChecker:           server.NewHealthChecker(serverContext),
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		// Wait for metrics server to be ready or fail
		select {
		case <-metricsReady:
			log.Printf("Metrics server started on %s", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}
		serverContext.Shutdown()
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("twodo-mcp", version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false), // Subscribe and listChanged
	)

	// Register all tools
	if err := registerAllTools(mcpSrv, serverContext); err != nil {
		return err
	}

	// Start the appropriate server based on transport type
	switch transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		log.Printf("Starting twodo-mcp server with %s transport on %s", transport, httpAddr)
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, httpAddr)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", transport)
	}
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, addr string) error {
	httpServer := mcpserver.NewStreamableHTTPServer(mcpSrv)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during HTTP server shutdown: %w", err)
		}
		return nil
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("server stopped with error: %w", err)
		}
		return nil
	}
}

// registerAllTools registers all MCP tools
// Extracted so serve and generate-docs register the same surface
func registerAllTools(mcpSrv *mcpserver.MCPServer, ctx *server.ServerContext) error {
	// Define all tool registrations
	type toolRegistration struct {
		name     string
		register func() error
	}

	registrations := []toolRegistration{
		{
			name: "2Do",
			register: func() error {
				return twodo_tools.RegisterTwodoTools(mcpSrv, ctx)
			},
		},
	}

	// Register all tools
	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s: %w", reg.name, err)
		}
	}

	return nil
}

// envOr returns the environment value for key, or def when unset or empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envDuration parses a duration from the environment. Unset, empty, or
// unparsable values fall back to def with a warning for the latter.
func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: invalid %s value %q (expected a duration like '500ms'), using default %s", key, v, def)
		return def
	}
	return d
}

// envBool parses a boolean from the environment, falling back to def for
// unset or unparsable values.
func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return def
}
