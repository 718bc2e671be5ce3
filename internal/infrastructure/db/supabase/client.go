// Package supabase implements the managed-backend side of the credential
// store adapter. It talks to the Supabase REST interface (PostgREST) with a
// service-role key; no SDK is involved, every call is one HTTP round trip.
package supabase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client issues authenticated requests against a Supabase project's REST
// endpoint. Safe for concurrent use; http.Client does its own pooling.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// newRequest builds a request for a /rest/v1 path with the service-role
// headers applied. pathAndQuery must start with "/".
func (c *Client) newRequest(ctx context.Context, method, pathAndQuery string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/rest/v1"+pathAndQuery, body)
	if err != nil {
		return nil, fmt.Errorf("supabase request: %w", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase call: %w", err)
	}
	return resp, nil
}

// Ping verifies the REST endpoint answers with the configured credentials.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("supabase ping: status %d", resp.StatusCode)
	}
	return nil
}
