// Package listings talks to the upstream projects API that is the system of
// record for property data. The upstream's own filtering and pagination are
// not trusted; callers fetch unfiltered bulk pages and re-derive both
// locally.
package listings

import (
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Client manages requests against the upstream listings backend.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

// NewClient creates a Client for the given base URL. Retry behavior stays at
// the transport level with short waits; there is no bespoke backoff policy on
// top of it.
func NewClient(baseURL string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 500 * time.Millisecond
	rc.HTTPClient.Timeout = 30 * time.Second
	rc.Logger = nil

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: rc,
	}
}
