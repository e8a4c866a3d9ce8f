// CLAUDE:SUMMARY MCP tool surface — layout import/export and page listing for the AI assistant.
package builder

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pagewright/atelier/kit"
)

// RegisterMCP registers the builder tools on an MCP server. The assistant
// drives the same service operations as the HTTP API, minus the CRUD surface
// it does not need.
func (s *Service) RegisterMCP(srv *mcp.Server) {
	s.registerImportTool(srv)
	s.registerExportTool(srv)
	s.registerListPagesTool(srv)
	s.registerOutlineTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	sch := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		sch["required"] = required
	}
	return sch
}

// --- import ---

type importReq struct {
	PageID   string          `json:"page_id"`
	Document json.RawMessage `json:"document"`
}

func (s *Service) registerImportTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "atelier_import_layout",
		Description: "Import a YOOtheme Pro layout document into a page, replacing its elements.",
		InputSchema: inputSchema(map[string]any{
			"page_id":  map[string]any{"type": "string", "description": "Target page id"},
			"document": map[string]any{"type": "object", "description": "The layout document JSON"},
		}, []string{"page_id", "document"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*importReq)
		elements, err := s.ImportLayout(ctx, r.PageID, r.Document)
		if err != nil {
			return nil, err
		}
		return map[string]any{"count": len(elements), "elements": elements}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r importReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- export ---

type exportReq struct {
	PageID string `json:"page_id"`
}

func (s *Service) registerExportTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "atelier_export_layout",
		Description: "Export a page's elements as a YOOtheme Pro layout document.",
		InputSchema: inputSchema(map[string]any{
			"page_id": map[string]any{"type": "string", "description": "Source page id"},
		}, []string{"page_id"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*exportReq)
		return s.ExportLayout(ctx, r.PageID)
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r exportReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- list pages ---

type listPagesReq struct {
	ProjectID string `json:"project_id"`
}

func (s *Service) registerListPagesTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "atelier_list_pages",
		Description: "List the pages of a project.",
		InputSchema: inputSchema(map[string]any{
			"project_id": map[string]any{"type": "string", "description": "Project id"},
		}, []string{"project_id"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*listPagesReq)
		pages, err := s.ListPages(ctx, r.ProjectID)
		if err != nil {
			return nil, err
		}
		return map[string]any{"pages": pages}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r listPagesReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- outline ---

type outlineReq struct {
	PageID string `json:"page_id"`
}

func (s *Service) registerOutlineTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "atelier_page_outline",
		Description: "Render a page's element tree as a Markdown outline.",
		InputSchema: inputSchema(map[string]any{
			"page_id": map[string]any{"type": "string", "description": "Page id"},
		}, []string{"page_id"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*outlineReq)
		md, err := s.Outline(ctx, r.PageID)
		if err != nil {
			return nil, err
		}
		return map[string]any{"markdown": md}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r outlineReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
