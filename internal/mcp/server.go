// ABOUTME: MCP server exposing the note store to AI agents.
// ABOUTME: Provides tools, resources, and prompts for note management over stdio.

package mcp

import (
	"context"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/notes/internal/store"
)

type Server struct {
	server *mcp.Server

	// mu serialises store access; handlers may run on separate goroutines.
	mu    sync.Mutex
	store *store.Store
}

func NewServer(st *store.Store, version string) *Server {
	s := &Server{store: st}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "notes",
			Version: version,
		},
		nil,
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
