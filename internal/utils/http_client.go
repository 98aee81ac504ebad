package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. Requests are never retried.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetRetryCount(0)}
}

// StopRedirects makes the client hand 3xx responses to the caller instead of
// following them. The keepno server answers an expired session with a
// redirect to its login page, which must surface as an error.
func (c *HTTPClient) StopRedirects() *HTTPClient {
	c.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	return c
}
