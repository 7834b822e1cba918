package listings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"terravista-listings/internal/models"
	"terravista-listings/pkg/logger"
	"terravista-listings/pkg/metrics"

	"github.com/hashicorp/go-retryablehttp"
)

// FetchProjects requests one unfiltered bulk page of raw records. The filter
// body is deliberately empty: filtering happens client-side after
// normalization.
func (c *Client) FetchProjects(ctx context.Context, page, limit int) ([]models.RawRecord, error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues("fetch_projects").Observe(time.Since(start).Seconds())
	}()

	requestURL := fmt.Sprintf("%s/api/projects?page=%d&limit=%d", c.baseURL, page, limit)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, requestURL, []byte("{}"))
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("fetch_projects").Inc()
		return nil, fmt.Errorf("failed to create upstream request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("fetch_projects").Inc()
		logger.GlobalLogger.Errorf("Upstream projects request failed: url=%s, error=%v", requestURL, err)
		return nil, fmt.Errorf("upstream request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("fetch_projects").Inc()
		return nil, fmt.Errorf("failed to read upstream response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamErrorsTotal.WithLabelValues("fetch_projects").Inc()
		logger.GlobalLogger.Errorf("Upstream projects request failed: url=%s, status=%s, response=%s", requestURL, resp.Status, string(body))
		return nil, fmt.Errorf("upstream returned %s", resp.Status)
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("fetch_projects").Inc()
		logger.GlobalLogger.Errorf("Failed to decode upstream response: url=%s, error=%v", requestURL, err)
		return nil, fmt.Errorf("failed to decode upstream response: %v", err)
	}

	return envelope.Records(), nil
}

// FetchProjectByID requests a single raw record. A nil record with a nil
// error is the not-found signal.
func (c *Client) FetchProjectByID(ctx context.Context, id string) (models.RawRecord, error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues("fetch_project_by_id").Observe(time.Since(start).Seconds())
	}()

	requestURL := fmt.Sprintf("%s/api/projects/%s", c.baseURL, url.PathEscape(id))
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("fetch_project_by_id").Inc()
		return nil, fmt.Errorf("failed to create upstream request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("fetch_project_by_id").Inc()
		logger.GlobalLogger.Errorf("Upstream project request failed: id=%s, error=%v", id, err)
		return nil, fmt.Errorf("upstream request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("fetch_project_by_id").Inc()
		return nil, fmt.Errorf("failed to read upstream response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamErrorsTotal.WithLabelValues("fetch_project_by_id").Inc()
		logger.GlobalLogger.Errorf("Upstream project request failed: id=%s, status=%s", id, resp.Status)
		return nil, fmt.Errorf("upstream returned %s", resp.Status)
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		if records := envelope.Records(); len(records) > 0 {
			return records[0], nil
		}
	}

	// Some deployments answer with the bare record instead of an envelope.
	var record models.RawRecord
	if err := json.Unmarshal(body, &record); err == nil && len(record) > 0 {
		if _, isEnvelope := record["success"]; !isEnvelope {
			return record, nil
		}
	}

	return nil, nil
}
