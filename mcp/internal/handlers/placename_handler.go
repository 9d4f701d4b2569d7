package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PlacenameHandler exposes the get_placename tool.
type PlacenameHandler struct {
	relay Relay
}

func NewPlacenameHandler(r Relay) *PlacenameHandler {
	return &PlacenameHandler{relay: r}
}

// RegisterTools registers the get_placename tool.
func (ph *PlacenameHandler) RegisterTools(s *server.MCPServer) error {
	tool := mcp.NewTool("get_placename",
		mcp.WithDescription("Fetch the full gazetteer record (names, spellings, temporal span, location, sources, historical context) for one sysId, as raw JSON."),
		mcp.WithString("sysId", mcp.Required(), mcp.Description("Record identifier, e.g. hvd_12345")),
	)
	s.AddTool(tool, ph.handleGetPlacename)
	return nil
}

func (ph *PlacenameHandler) handleGetPlacename(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// A missing sysId falls through as "" and gets the relay's own validation message.
	sysID, _ := req.RequireString("sysId")
	return relayResult(ph.relay.GetPlacename(ctx, sysID))
}
