package server

import (
	"context"
	"fmt"
	"sync"

	"twodo-mcp/internal/instrumentation"
	"twodo-mcp/internal/twodo"
)

// ServerContext holds the shared dependencies for the MCP server: the
// 2Do client that launches x-callback-url requests, the metrics recorder,
// and the audit logger. Tool handlers receive it at registration time.
type ServerContext struct {
	ctx         context.Context
	cancel      context.CancelFunc
	client      *twodo.Client
	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	mu          sync.RWMutex
	shutdown    bool
}

// NewServerContext creates a new server context wrapping the given 2Do client.
func NewServerContext(ctx context.Context, client *twodo.Client) (*ServerContext, error) {
	if client == nil {
		return nil, fmt.Errorf("twodo client is required")
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
		client: client,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// TwodoClient returns the 2Do client.
func (sc *ServerContext) TwodoClient() *twodo.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.client
}

// SetTwodoClient replaces the 2Do client. Used by tests.
func (sc *ServerContext) SetTwodoClient(client *twodo.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.client = client
	if sc.client != nil && sc.metrics != nil {
		sc.client.SetMetrics(sc.metrics)
	}
}

// SetMetrics sets the metrics recorder and propagates it to the 2Do client
// so that launch and clipboard metrics are recorded.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
	if sc.client != nil {
		sc.client.SetMetrics(metrics)
	}
}

// Metrics returns the metrics recorder, or nil if instrumentation is not
// configured. Callers rely on the nil-safe recording methods.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger for tool invocations.
func (sc *ServerContext) SetAuditLogger(logger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = logger
}

// AuditLogger returns the audit logger, or nil if audit logging is not
// configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// Shutdown cancels the server context and marks it as shut down.
func (sc *ServerContext) Shutdown() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return
	}

	sc.shutdown = true
	sc.cancel()
}

// IsShutdown returns whether the server context has been shut down.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}
