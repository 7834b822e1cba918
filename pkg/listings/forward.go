package listings

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"terravista-listings/pkg/metrics"

	"github.com/hashicorp/go-retryablehttp"
)

// Forward relays a filter request to the upstream projects endpoint verbatim
// and hands back whatever it answered, leaving interpretation to the caller.
func (c *Client) Forward(ctx context.Context, page, limit string, body []byte) (int, []byte, error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues("forward").Observe(time.Since(start).Seconds())
	}()

	u, err := buildForwardURL(c.baseURL, page, limit)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("forward").Inc()
		return 0, nil, err
	}

	if len(body) == 0 {
		body = []byte("{}")
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("forward").Inc()
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("forward").Inc()
		return 0, nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("forward").Inc()
		return resp.StatusCode, nil, err
	}

	return resp.StatusCode, payload, nil
}

func buildForwardURL(base, page, limit string) (string, error) {
	u, err := url.Parse(base + "/api/projects")
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("page", page)
	q.Set("limit", limit)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
