package mcpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trolley/backend/internal/infrastructure/coles"
	"github.com/trolley/backend/internal/infrastructure/woolworths"
	"github.com/trolley/backend/internal/usecase"
)

// newTestSession connects an MCP client to the server over in-memory
// transports, backed by fake supermarket endpoints.
func newTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	woolworthsServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("searchTerm") {
		case "unicorn steak":
			_, _ = w.Write([]byte(`{"Products": []}`))
		case "outage":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream exploded"))
		default:
			_, _ = w.Write([]byte(`{
				"Products": [
					{"Products": [
						{"DisplayName": "Full Cream Milk 2L", "Price": 3.10, "PackageSize": "2L"},
						{"DisplayName": "Lite Milk 1L", "Price": 2.20, "PackageSize": "1L"},
						{"DisplayName": "Skim Milk 1L", "Price": null, "InstorePrice": 2.00, "PackageSize": "1L"}
					]}
				]
			}`))
		}
	}))
	t.Cleanup(woolworthsServer.Close)

	colesServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"products": [
				{"name": "Free Range Eggs 12 Pack", "price": 6.50, "unit": "pack"}
			]
		}`))
	}))
	t.Cleanup(colesServer.Close)

	service := usecase.NewSearchService(
		woolworths.NewClient(woolworthsServer.URL, 5*time.Second),
		coles.NewClient(colesServer.URL, "1234", 5*time.Second),
	)
	server := New(service)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()
	_, err := server.mcp.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected a text content block")
	return text.Text
}

func TestListTools(t *testing.T) {
	session := newTestSession(t)

	result, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	assert.Contains(t, names, "get_woolworths_products")
	assert.Contains(t, names, "get_coles_products")
}

func TestGetWoolworthsProducts(t *testing.T) {
	session := newTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_woolworths_products",
		Arguments: map[string]any{"query": "milk"},
	})
	require.NoError(t, err)

	text := toolText(t, result)
	assert.Contains(t, text, "Name: Full Cream Milk 2L")
	assert.Contains(t, text, "Price: $3.10")
	assert.Contains(t, text, "Unit: L")
	assert.Contains(t, text, "Store: woolworths")
	// Instore price fallback shows through the rendered text.
	assert.Contains(t, text, "Price: $2.00")
	assert.Equal(t, 2, strings.Count(text, "\n---\n"))
}

func TestGetWoolworthsProducts_Limit(t *testing.T) {
	session := newTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_woolworths_products",
		Arguments: map[string]any{"query": "milk", "limit": 1},
	})
	require.NoError(t, err)

	text := toolText(t, result)
	assert.Contains(t, text, "Full Cream Milk 2L")
	assert.NotContains(t, text, "Lite Milk 1L")
}

func TestGetWoolworthsProducts_ZeroLimit(t *testing.T) {
	session := newTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_woolworths_products",
		Arguments: map[string]any{"query": "milk", "limit": 0},
	})
	require.NoError(t, err)

	assert.Equal(t, "No products found at Woolworths for 'milk'.", toolText(t, result))
}

func TestGetWoolworthsProducts_NoResults(t *testing.T) {
	session := newTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_woolworths_products",
		Arguments: map[string]any{"query": "unicorn steak"},
	})
	require.NoError(t, err)

	assert.Equal(t, "No products found at Woolworths for 'unicorn steak'.", toolText(t, result))
}

func TestGetWoolworthsProducts_UpstreamError(t *testing.T) {
	session := newTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_woolworths_products",
		Arguments: map[string]any{"query": "outage"},
	})
	require.NoError(t, err)

	text := toolText(t, result)
	assert.Contains(t, text, "Error fetching Woolworths products:")
	assert.Contains(t, text, "status code 502")
	assert.Contains(t, text, "Response: upstream exploded")
}

func TestGetColesProducts(t *testing.T) {
	session := newTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_coles_products",
		Arguments: map[string]any{"query": "eggs", "store_id": "9999"},
	})
	require.NoError(t, err)

	text := toolText(t, result)
	assert.Contains(t, text, "Name: Free Range Eggs 12 Pack")
	assert.Contains(t, text, "Price: $6.50")
	assert.Contains(t, text, "Unit: pack")
	assert.Contains(t, text, "Store: coles")
}

func TestHandler(t *testing.T) {
	service := usecase.NewSearchService(
		woolworths.NewClient("", 0),
		coles.NewClient("", "", 0),
	)
	server := New(service)

	assert.NotNil(t, server.Handler())
}
