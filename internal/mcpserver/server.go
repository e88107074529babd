// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Raido index tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/raido/internal/engine"
	"github.com/starford/raido/internal/settings"
)

// Server wraps the MCP server with Raido tools.
type Server struct {
	mcp   *server.MCPServer
	eng   *engine.Engine
	store *settings.Store
}

// New creates a new MCP server with all Raido tools registered.
func New(eng *engine.Engine, store *settings.Store) *Server {
	s := &Server{eng: eng, store: store}

	s.mcp = server.NewMCPServer(
		"Raido",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("preview_index",
		mcp.WithDescription("Render the index tree for a vault folder without writing anything. "+
			"The output is exactly what a generated block would contain; see the "+
			"raido://index-format resource for the block format."),
		mcp.WithString("folder", mcp.Required(), mcp.Description("Vault-relative folder path (e.g. topics/go)")),
	), s.previewIndex)

	s.mcp.AddTool(mcp.NewTool("regenerate",
		mcp.WithDescription("Regenerate the marked folder notes at and above a folder "+
			"(or the whole vault when folder is empty)."),
		mcp.WithString("folder", mcp.Description("Vault-relative folder path; empty for a full pass")),
	), s.regenerate)

	s.mcp.AddTool(mcp.NewTool("get_settings",
		mcp.WithDescription("Return the active index-generation settings record."),
	), s.getSettings)

	// Resource: generated block format.
	s.mcp.AddResource(
		mcp.NewResource("raido://index-format", "Index Block Format",
			mcp.WithResourceDescription("Layout of the generated index blocks Raido maintains inside folder notes."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readIndexFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) previewIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder, err := req.RequireString("folder")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tree, err := s.eng.Preview(folder)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("preview failed: %v", err)), nil
	}
	if tree == "" {
		return mcp.NewToolResultText("(empty: nothing renderable in this folder)"), nil
	}
	return mcp.NewToolResultText(tree), nil
}

func (s *Server) regenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder := ""
	if f, err := req.RequireString("folder"); err == nil {
		folder = f
	}

	if folder == "" {
		if err := s.eng.FullPass(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("regenerated: full vault pass"), nil
	}
	s.eng.PropagateUp(folder, true)
	return mcp.NewToolResultText(fmt.Sprintf("regenerated: %s and its marked ancestors", folder)), nil
}

func (s *Server) getSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(s.store.Current(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readIndexFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "raido://index-format",
			MIMEType: "text/markdown",
			Text:     IndexFormatContract,
		},
	}, nil
}
