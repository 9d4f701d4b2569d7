package handlers

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/placename-desk/placename-desk/client"
)

// Relay is the subset of *client.Client the tools call.
type Relay interface {
	SearchPlacenames(ctx context.Context, q client.SearchQuery) (json.RawMessage, error)
	GetPlacename(ctx context.Context, sysID string) (json.RawMessage, error)
}

// relayResult turns a relay outcome into a tool result. Failures are tool
// errors carrying the relay's text, never protocol errors.
func relayResult(raw json.RawMessage, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}
