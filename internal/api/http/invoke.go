package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/placename-desk/placename-desk/client"
	"github.com/placename-desk/placename-desk/internal/api/respond"
)

// Command names accepted by the bridge. They match the MCP tool names.
const (
	CommandSearch = "search_placenames"
	CommandDetail = "get_placename"
)

// maxArgsBytes bounds an invoke body; queries are a handful of fields.
const maxArgsBytes = 64 << 10

// Relay is the pair of operations the bridge exposes.
type Relay interface {
	SearchPlacenames(ctx context.Context, q client.SearchQuery) (json.RawMessage, error)
	GetPlacename(ctx context.Context, sysID string) (json.RawMessage, error)
}

// searchArgs mirrors the front-end call invoke("search_placenames", {query}).
type searchArgs struct {
	Query client.SearchQuery `json:"query"`
}

// detailArgs mirrors invoke("get_placename", {sysId}).
type detailArgs struct {
	SysID string `json:"sysId"`
}

// InvokeHandler handles POST /invoke/{command}.
type InvokeHandler struct {
	relay Relay
}

// NewInvokeHandler instantiates the handler with its relay.
func NewInvokeHandler(relay Relay) *InvokeHandler {
	return &InvokeHandler{relay: relay}
}

// Invoke decodes the command arguments, runs the relay and writes either the
// gazetteer JSON unchanged or {"error": text}.
func (h *InvokeHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	command := mux.Vars(r)["command"]

	var (
		raw json.RawMessage
		err error
	)
	switch command {
	case CommandSearch:
		var args searchArgs
		if err := decodeArgs(r, &args); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		raw, err = h.relay.SearchPlacenames(r.Context(), args.Query)
	case CommandDetail:
		var args detailArgs
		if err := decodeArgs(r, &args); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		raw, err = h.relay.GetPlacename(r.Context(), args.SysID)
	default:
		respond.WriteNotFound(w, "unknown command: "+command)
		return
	}

	if err != nil {
		log.Debug().Err(err).Str("command", command).Str("request_id", RequestIDFrom(r.Context())).Msg("invoke failed")
		if client.IsValidation(err) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		respond.WriteBadGateway(w, err.Error())
		return
	}
	respond.WriteRaw(w, http.StatusOK, raw)
}

// decodeArgs reads a JSON object into dst. An empty body leaves dst zeroed.
func decodeArgs(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxArgsBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.New("invalid arguments: " + err.Error())
	}
	return nil
}
