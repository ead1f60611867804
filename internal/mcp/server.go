// ABOUTME: MCP server implementation for moodlog
// ABOUTME: Provides tools, resources, and prompts for AI agents to read and write the mood journal

package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/harper/moodlog/internal/journal"
)

// Server wraps the MCP server with moodlog-specific context
type Server struct {
	mcpServer *server.MCPServer
	journal   *journal.Store
	logger    *zap.Logger
}

// NewServer creates a new MCP server instance over an initialized journal
func NewServer(j *journal.Store, logger *zap.Logger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		journal: j,
		logger:  logger,
	}

	s.mcpServer = server.NewMCPServer(
		"moodlog",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
