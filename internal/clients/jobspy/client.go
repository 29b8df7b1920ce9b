package jobspy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/maxaizer/job-ingest/internal/metrics"
	"golang.org/x/time/rate"
)

const searchPath = "/api/v1/search_jobs"

type searchJobsResponse struct {
	Count int       `json:"count"`
	Jobs  []Posting `json:"jobs"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to a JobSpy REST service. Failures are reported only through the error text,
// which carries the HTTP status when the service answered.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

// SetTimeout replaces the transport with a plain http.Client using the given timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient = &http.Client{Timeout: timeout}
}

func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) SearchJobs(ctx context.Context, parameters SearchParameters) ([]Posting, error) {

	if err := parameters.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	payload, err := json.Marshal(parameters)
	if err != nil {
		return nil, fmt.Errorf("error encoding request: %v", err)
	}

	start := time.Now()
	body, err := c.sendRequest(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(payload))
	metrics.ProviderRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	var response searchJobsResponse
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&response); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}

	return response.Jobs, nil
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, body io.Reader) ([]byte, error) {

	if c.rateLimiter != nil {
		err := c.rateLimiter.Wait(ctx)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	return body, nil
}
