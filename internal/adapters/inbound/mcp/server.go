// Package mcp exposes the repository indexer to AI agents as Model Context Protocol tools
// served over streamable HTTP.
package mcp

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/usecases"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "repoindexer"
	serverVersion = "1.0.0"
)

// RepoIndexerMCPServer hosts the MCP tools on MCP_PORT.
type RepoIndexerMCPServer struct {
	Port                    int                       `config:"MCP_PORT" default:"8090"`
	Logger                     *log.Logger                  `resolve:""`
	EstimateCostUseCase        usecases.EstimateCost        `resolve:""`
	RequestIngestionUseCase    usecases.RequestIngestion    `resolve:""`
	SearchCodeUseCase          usecases.SearchCode          `resolve:""`
	SummarizeCommitDiffUseCase usecases.SummarizeCommitDiff `resolve:""`
}

// NewServer builds the MCP server with every tool registered.
func (s RepoIndexerMCPServer) NewServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	s.registerTools(server)
	return server
}

// Handler returns the streamable HTTP handler mounted on /mcp.
func (s RepoIndexerMCPServer) Handler() http.Handler {
	server := s.NewServer()
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", telemetry.Middleware("repoindexer-mcp")(streamable))
	return mux
}

// Run starts the MCP HTTP server and stops it when ctx is cancelled.
func (s RepoIndexerMCPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		Addr:              fmt.Sprintf(":%d", s.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("RepoIndexerMCPServer: Listening on port %d", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if err != nil {
			s.Logger.Printf("RepoIndexerMCPServer: error during shutdown: %v", err)
		} else {
			s.Logger.Println("RepoIndexerMCPServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady reports whether the MCP port accepts connections.
func (s RepoIndexerMCPServer) IsReady(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", fmt.Sprintf("localhost:%d", s.Port))
	if err != nil {
		return err
	}
	return conn.Close()
}
