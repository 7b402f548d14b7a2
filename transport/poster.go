// Package transport executes the HTTP POSTs issued by the Moolah client.
package transport

import (
	"context"
	"net/http"
)

// Response is the part of an HTTP reply the client cares about.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Poster sends a POST to pathWithQuery, resolved against the poster's base
// URL. Implementations own timeouts and retries.
type Poster interface {
	Post(ctx context.Context, pathWithQuery string, body []byte) (*Response, error)
}
