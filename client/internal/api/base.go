package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/placename-desk/placename-desk/client/internal/errors"
)

// Gazetteer endpoint paths, relative to the service origin.
const (
	SearchPath = "/gateway/geom-name/placename-object/home/placename"
	DetailPath = SearchPath + "/json/"
)

// relay sends req and turns the outcome into either the JSON body or a
// *errors.RelayError. It owns the three failure exits shared by every
// operation: transport, status and decode.
func relay(ctx context.Context, req *resty.Request, method, url, op string) (json.RawMessage, error) {
	resp, err := req.
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Execute(method, url)
	if err != nil {
		return nil, errors.NewNetworkError(op, err)
	}
	body := resp.RawBody()
	defer func() { _ = body.Close() }()

	if !isSuccess(resp.StatusCode()) {
		text := errors.UnreadableBody
		if data, readErr := io.ReadAll(body); readErr == nil {
			text = string(data)
		}
		return nil, errors.NewHTTPError(op, resp.StatusCode(), text)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.NewDecodeError(op, err)
	}
	var v json.RawMessage
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.NewDecodeError(op, err)
	}
	return v, nil
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
