package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/placename-desk/placename-desk/client/internal/errors"
	"github.com/placename-desk/placename-desk/client/internal/types"
)

// Search posts q to the placename search endpoint and returns the body as-is.
func Search(ctx context.Context, rc *resty.Client, baseURL string, q types.SearchQuery) (json.RawMessage, error) {
	req := rc.R().
		SetHeader("Content-Type", "application/json").
		SetBody(q)
	return relay(ctx, req, http.MethodPost, baseURL+SearchPath, errors.OpSearch)
}
