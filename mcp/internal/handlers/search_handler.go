package handlers

import (
	"context"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/placename-desk/placename-desk/client"
)

// SearchHandler exposes the search_placenames tool.
type SearchHandler struct {
	relay Relay
}

func NewSearchHandler(r Relay) *SearchHandler {
	return &SearchHandler{relay: r}
}

// RegisterTools registers the search_placenames tool.
func (sh *SearchHandler) RegisterTools(s *server.MCPServer) error {
	searchTool := mcp.NewTool("search_placenames",
		mcp.WithDescription("Search the historical gazetteer. All criteria are optional; the raw JSON envelope (resp_code, resp_msg, datas{total,size,pages,current,records}) is returned unchanged."),
		mcp.WithString("name", mcp.Description("Placename or part of it, in any script")),
		mcp.WithString("type", mcp.Description("Feature type filter, e.g. county")),
		mcp.WithNumber("year", mcp.Description("Only names attested in this year")),
		mcp.WithNumber("page", mcp.Description("1-based page number")),
		mcp.WithNumber("limit", mcp.Description("Records per page")),
	)
	s.AddTool(searchTool, sh.handleSearch)
	return nil
}

func (sh *SearchHandler) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q, err := searchQueryFromArgs(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return relayResult(sh.relay.SearchPlacenames(ctx, q))
}

// searchQueryFromArgs copies only the arguments that are present, so absent
// criteria stay absent on the wire.
func searchQueryFromArgs(args map[string]any) (client.SearchQuery, error) {
	var q client.SearchQuery
	if v, ok := args["name"].(string); ok {
		q.Name = client.String(v)
	}
	if v, ok := args["type"].(string); ok {
		q.Kind = client.String(v)
	}
	for _, f := range []struct {
		key string
		dst **uint32
	}{
		{"year", &q.Year},
		{"page", &q.Page},
		{"limit", &q.Limit},
	} {
		raw, present := args[f.key]
		if !present || raw == nil {
			continue
		}
		n, err := toUint32(f.key, raw)
		if err != nil {
			return client.SearchQuery{}, err
		}
		*f.dst = client.Uint32(n)
	}
	return q, nil
}

func toUint32(key string, v any) (uint32, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
	if f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return uint32(f), nil
}
