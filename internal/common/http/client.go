// internal/common/http/client.go
package http

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// NewClient returns the base client for outbound Google API traffic. Every
// request, token exchanges included, gives up after timeout.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// WithClient returns ctx carrying c. oauth2 then uses c for token requests and
// as the base transport of the clients it builds from ctx.
func WithClient(ctx context.Context, c *http.Client) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c)
}
