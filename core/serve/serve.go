// Package serve runs a built MCP server over one of the two supported
// transports: the default long-lived stdio pipe, or a network listener
// speaking stateless streamable HTTP (the mode used for serverless
// deployments, selected with the --http-stream flag).
package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
)

const (
	// DefaultPort is the streamable HTTP port used when none is configured.
	DefaultPort = 8080

	shutdownTimeout = 30 * time.Second
)

// Options selects the transport for [Run].
type Options struct {
	// HTTPStream switches from the default stdio transport to the
	// streamable HTTP listener.
	HTTPStream bool

	// Port is the TCP port for the streamable HTTP transport. Non-positive
	// values fall back to [DefaultPort]. Ignored in stdio mode.
	Port int
}

// Addr returns the listen address derived from Port.
func (o Options) Addr() string {
	port := o.Port
	if port <= 0 {
		port = DefaultPort
	}
	return fmt.Sprintf(":%d", port)
}

// Run serves s until the transport shuts down and returns the terminal error,
// if any.
//
// In stdio mode the call blocks until the client closes the pipe. In HTTP
// mode the listener runs stateless (each request is self-contained, responses
// are plain JSON) and a cancellation of ctx, typically SIGINT/SIGTERM wired
// through signal.NotifyContext, triggers a graceful shutdown bounded by a
// 30-second timeout.
func Run(ctx context.Context, s *server.MCPServer, opts Options) error {
	if !opts.HTTPStream {
		if err := server.ServeStdio(s); err != nil {
			return fmt.Errorf("stdio transport: %w", err)
		}
		return nil
	}

	httpServer := server.NewStreamableHTTPServer(s, server.WithStateLess(true))

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start(opts.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http transport: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
