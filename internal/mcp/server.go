// ABOUTME: MCP server for litenotes integration with AI agents.
// ABOUTME: Provides tools, resources, and prompts for note management.

package mcp

import (
	"context"

	"github.com/harper/litenotes/internal/app"
	"github.com/harper/litenotes/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type Server struct {
	server     *mcp.Server
	notes      *service.NoteService
	categories *service.CategoryService
	log        *zap.Logger
}

func NewServer(notes *service.NoteService, categories *service.CategoryService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		notes:      notes,
		categories: categories,
		log:        log.Named("mcp"),
	}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "litenotes",
			Version: app.Version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	s.log.Info("serving MCP over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
