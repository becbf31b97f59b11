// ABOUTME: MCP resources for exposing notes as readable resources.
// ABOUTME: Allows AI agents to read a note via the notes://note/{id} URI scheme.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: "notes://note/{id}",
			Name:        "Note",
			Description: "Access individual notes by ID",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var id int
	if _, err := fmt.Sscanf(req.Params.URI, "notes://note/%d", &id); err != nil {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	s.mu.Lock()
	note, err := s.store.Get(id)
	if err != nil {
		s.mu.Unlock()
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	content := fmt.Sprintf("# %s\n\n%s\n", note.Title, note.Body)
	s.mu.Unlock()

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     content,
			},
		},
	}, nil
}
