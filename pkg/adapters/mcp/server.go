package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/openburn/motordoc/pkg/domain"
	"github.com/openburn/motordoc/pkg/library"
	"github.com/openburn/motordoc/pkg/validation"
	"github.com/openburn/motordoc/pkg/workspace"
)

// Server wraps a workspace and exposes its document lifecycle as MCP
// tools, so agent hosts can drive edits, undo/redo and persistence.
type Server struct {
	ws        *workspace.Manager
	lib       *library.Manager
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. lib may be nil; the
// propellant tool then reports that no library is configured.
func NewServer(ws *workspace.Manager, lib *library.Manager, version string) *Server {
	s := &Server{
		ws:        ws,
		lib:       lib,
		mcpServer: server.NewMCPServer("motordoc-mcp", version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_state",
		mcp.WithDescription("Get the workspace bookkeeping: path, dirty flag, undo/redo availability, version count."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(s.ws.State())
	})

	s.mcpServer.AddTool(mcp.NewTool("get_design",
		mcp.WithDescription("Get the current design snapshot as JSON."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(s.ws.Current())
	})

	s.mcpServer.AddTool(mcp.NewTool("add_version",
		mcp.WithDescription("Commit an edited design as a new version. Duplicate snapshots are elided; committing from a rolled-back state discards the redo tail."),
		mcp.WithString("design", mcp.Required(), mcp.Description("Full design snapshot as a JSON object")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, _ := request.GetArguments()["design"].(string)
		var design domain.Design
		if err := json.Unmarshal([]byte(raw), &design); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid design JSON: %v", err)), nil
		}
		s.ws.AddVersion(&design)
		return jsonResult(s.ws.State())
	})

	s.mcpServer.AddTool(mcp.NewTool("undo",
		mcp.WithDescription("Roll the document back one version."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.finishOp(s.ws.Undo())
	})

	s.mcpServer.AddTool(mcp.NewTool("redo",
		mcp.WithDescription("Advance the document one version forward."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.finishOp(s.ws.Redo())
	})

	s.mcpServer.AddTool(mcp.NewTool("save",
		mcp.WithDescription("Persist the current design. Provide a path for untitled documents."),
		mcp.WithString("path", mcp.Description("Target file path (optional once the document has one)")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, _ := request.GetArguments()["path"].(string)
		if path != "" {
			return s.finishOp(s.ws.SaveAs(ctx, path))
		}
		return s.finishOp(s.ws.Save(ctx))
	})

	s.mcpServer.AddTool(mcp.NewTool("open_design",
		mcp.WithDescription("Load a design file and adopt it as the current document. Refused while unsaved changes exist, unless the workspace has a prompter."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Design file path")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, _ := request.GetArguments()["path"].(string)
		if path == "" {
			return mcp.NewToolResultError("path is required"), nil
		}
		return s.finishOp(s.ws.Open(ctx, path))
	})

	s.mcpServer.AddTool(mcp.NewTool("new_design",
		mcp.WithDescription("Start a fresh untitled document from the default design. Refused while unsaved changes exist, unless the workspace has a prompter."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.finishOp(s.ws.New(ctx))
	})

	s.mcpServer.AddTool(mcp.NewTool("validate_design",
		mcp.WithDescription("Check the current design for implausible or incomplete values."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report := struct {
			Valid  bool     `json:"valid"`
			Issues []string `json:"issues,omitempty"`
		}{Valid: true}
		if err := validation.Validate(s.ws.Current()); err != nil {
			report.Valid = false
			for _, e := range validation.ValidationErrors(err) {
				report.Issues = append(report.Issues, e.Error())
			}
		}
		return jsonResult(report)
	})

	s.mcpServer.AddTool(mcp.NewTool("list_propellants",
		mcp.WithDescription("List the shared propellant library."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if s.lib == nil {
			return mcp.NewToolResultError("no propellant library configured"), nil
		}
		entries, err := s.lib.All(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to load library: %v", err)), nil
		}
		return jsonResult(entries)
	})
}

func (s *Server) finishOp(err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.ws.State())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
