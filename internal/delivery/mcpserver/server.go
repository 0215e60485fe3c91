// Package mcpserver exposes the product search operations as MCP tools
// using the official MCP Go SDK. Each tool returns a single text block;
// failures are rendered into that text rather than surfaced as protocol
// errors, so agents always receive a readable outcome.
package mcpserver

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trolley/backend/internal/usecase"
)

const (
	serverName    = "supermarket-mcp"
	serverVersion = "1.0.0"

	woolworthsDisplayName = "Woolworths"
	colesDisplayName      = "Coles"
)

// Server hosts the supermarket search tools over MCP.
type Server struct {
	mcp    *mcp.Server
	search *usecase.SearchService
}

// WoolworthsArgs are the inputs of the get_woolworths_products tool.
type WoolworthsArgs struct {
	Query string `json:"query" jsonschema:"The product search query."`
	Limit *int   `json:"limit,omitempty" jsonschema:"Maximum number of products to return."`
}

// ColesArgs are the inputs of the get_coles_products tool.
type ColesArgs struct {
	Query   string `json:"query" jsonschema:"The product search query."`
	StoreID string `json:"store_id,omitempty" jsonschema:"The Coles store ID to search in."`
	Limit   *int   `json:"limit,omitempty" jsonschema:"Maximum number of products to return."`
}

// New creates an MCP server wired to the search service.
func New(search *usecase.SearchService) *Server {
	s := &Server{
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil),
		search: search,
	}

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_woolworths_products",
		Description: "Search for products at Woolworths.",
	}, s.getWoolworthsProducts)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_coles_products",
		Description: "Search for products at Coles.",
	}, s.getColesProducts)

	return s
}

// Run serves MCP over stdio until the context is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler for serving MCP over HTTP.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}

func (s *Server) getWoolworthsProducts(ctx context.Context, req *mcp.CallToolRequest, args WoolworthsArgs) (*mcp.CallToolResult, any, error) {
	result, err := s.search.SearchWoolworths(ctx, args.Query, limitOrDefault(args.Limit))
	if err != nil {
		return textResult(usecase.RenderError(woolworthsDisplayName, err)), nil, nil
	}
	if result.Count == 0 {
		return textResult(usecase.RenderNoProducts(woolworthsDisplayName, args.Query)), nil, nil
	}
	return textResult(usecase.RenderProducts(result.Products)), nil, nil
}

func (s *Server) getColesProducts(ctx context.Context, req *mcp.CallToolRequest, args ColesArgs) (*mcp.CallToolResult, any, error) {
	result, err := s.search.SearchColes(ctx, args.Query, args.StoreID, limitOrDefault(args.Limit))
	if err != nil {
		return textResult(usecase.RenderError(colesDisplayName, err)), nil, nil
	}
	if result.Count == 0 {
		return textResult(usecase.RenderNoProducts(colesDisplayName, args.Query)), nil, nil
	}
	return textResult(usecase.RenderProducts(result.Products)), nil, nil
}

// limitOrDefault applies the default cap when the caller omitted limit.
// An explicit non-positive limit is honored and yields the empty outcome.
func limitOrDefault(limit *int) int {
	if limit == nil {
		return usecase.DefaultLimit
	}
	return *limit
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
