package fixer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"currency-console/internal"
)

const (
	DefaultBaseURL = "https://data.fixer.io/api"
	latestEndpoint = "latest"
	maxBodyBytes   = 256 << 10
)

var _ internal.Fetcher = (*Client)(nil)

// Client loads rate snapshots from a fixer compatible endpoint. Requests are
// never retried.
type Client struct {
	BaseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		BaseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Latest(ctx context.Context) (*internal.RateSnapshot, error) {
	return c.doRates(ctx, latestEndpoint)
}

func (c *Client) Historical(ctx context.Context, date internal.Date) (*internal.RateSnapshot, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is empty", internal.ErrInvalidDate)
	}
	return c.doRates(ctx, date.String())
}

func (c *Client) doRates(ctx context.Context, endpoint string) (*internal.RateSnapshot, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, &internal.FetchError{Op: "parse base url", Err: err}
	}
	u = u.JoinPath(endpoint)

	q := url.Values{}
	q.Set("access_key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &internal.FetchError{Op: "new request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &internal.FetchError{Op: "do request", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &internal.FetchError{Op: "read response body", Err: err}
	}

	return decode(resp.StatusCode, body)
}

// decode tells the three response shapes apart: a body without a success
// flag, an explicit provider failure and a rates payload.
func decode(statusCode int, body []byte) (*internal.RateSnapshot, error) {
	var status struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(body, &status); err != nil || status.Success == nil {
		if statusCode < 200 || statusCode >= 300 {
			return nil, &internal.FetchError{Op: fmt.Sprintf("fixer http %d", statusCode), Err: errors.New(string(body))}
		}
		return nil, &internal.FetchError{Op: "Unexpected response", Err: errors.New(string(body))}
	}

	var out internal.RatesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &internal.FetchError{Op: "unmarshal response", Err: err}
	}

	if !out.Success {
		if out.Error == nil {
			return nil, &internal.FetchError{Op: "Unexpected response", Err: errors.New(string(body))}
		}
		return nil, out.Error
	}

	snapshot, err := out.Snapshot()
	if err != nil {
		return nil, &internal.FetchError{Op: "invalid rates payload", Err: err}
	}
	return snapshot, nil
}
