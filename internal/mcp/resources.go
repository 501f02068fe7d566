// ABOUTME: MCP resources for exposing notes as readable resources.
// ABOUTME: Allows AI agents to access note content via URI scheme.

package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/harper/litenotes/internal/ui"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const noteURIPrefix = "litenotes://note/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: noteURIPrefix + "{id}",
			Name:        "Note",
			Description: "Access individual notes by ID",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	raw, ok := strings.CutPrefix(req.Params.URI, noteURIPrefix)
	if !ok {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid note id %q: %w", raw, err)
	}

	note, err := s.notes.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	content := fmt.Sprintf("# %s\n\n**Category:** %s\n\n%s", ui.NoteLabel(note), ui.CategoryLabel(note.Category), note.Content)

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
