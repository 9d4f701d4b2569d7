package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/placename-desk/placename-desk/client/internal/errors"
)

// GetPlacename fetches one record by sysId. The identifier is trimmed and a
// blank one fails without touching the network.
func GetPlacename(ctx context.Context, rc *resty.Client, baseURL, sysID string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(sysID)
	if trimmed == "" {
		return nil, errors.NewValidationError(errors.OpDetail, errors.ErrEmptySysID)
	}
	return relay(ctx, rc.R(), http.MethodGet, baseURL+DetailPath+EscapeSysID(trimmed), errors.OpDetail)
}

// EscapeSysID percent-encodes every byte outside the unreserved set
// (A-Z a-z 0-9 - _ . ~), so a space becomes %20 and a slash %2F.
func EscapeSysID(id string) string {
	return strings.ReplaceAll(url.QueryEscape(id), "+", "%20")
}
