package providers

import (
	"context"
	"encoding/json"
	"net/url"
)

// Upstream performs a single GET against a third-party sports data API.
// path is relative to the upstream base URL (e.g. "/fixtures"); an empty
// query is sent without a query string. The decoded body is returned as-is.
type Upstream interface {
	Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
}

// UpstreamFunc adapts a function to the Upstream interface.
type UpstreamFunc func(ctx context.Context, path string, query url.Values) (json.RawMessage, error)

func (f UpstreamFunc) Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return f(ctx, path, query)
}
